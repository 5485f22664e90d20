// ABOUTME: Write-side record builder shaping one native record per save.
// ABOUTME: Clamps invalid numeric inputs and filters metadata to string values.
package normalize

import (
	"math"
	"time"

	"github.com/openhealth/healthbridge/internal/models"
	"github.com/openhealth/healthbridge/internal/native"
)

// BuildRecord shapes exactly one native record for a write. Counts and
// rates are never submitted negative: step counts are floored to a
// non-negative integer and heart rates rounded to a non-negative
// integer. Heart-rate records carry a single sub-reading at the start
// instant, matching the native series shape.
func BuildRecord(dt models.DataType, value float64, start, end time.Time, metadata map[string]any) *native.Record {
	rec := &native.Record{
		RecordType: dt.RecordType(),
		StartTime:  start,
		EndTime:    end,
		Metadata:   FilterMetadata(metadata),
	}

	switch dt {
	case models.TypeSteps:
		rec.Value = math.Max(0, math.Floor(value))
	case models.TypeHeartRate:
		bpm := math.Max(0, math.Round(value))
		rec.Samples = []native.SubReading{{Time: start, Value: bpm}}
	default:
		rec.Value = value
	}

	return rec
}

// FilterMetadata keeps only string-valued entries of a string-keyed
// mapping. Non-string values are dropped silently, not rejected.
// Returns nil when nothing survives, so empty metadata stays absent
// from the native payload.
func FilterMetadata(metadata map[string]any) map[string]string {
	var out map[string]string
	for k, v := range metadata {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[k] = s
	}
	return out
}
