// ABOUTME: Sample normalizer converting native records to common-schema samples.
// ABOUTME: Handles series explosion, source attribution, and canonical units.
package normalize

import (
	"fmt"
	"strings"

	"github.com/openhealth/healthbridge/internal/models"
	"github.com/openhealth/healthbridge/internal/native"
)

// Samples converts one native record into its normalized samples.
// Single-valued record kinds yield exactly one sample. Series records
// (heart rate) yield one sample per sub-reading, each inheriting the
// record's source and metadata but carrying its own timestamp and value.
// Reads always use the type's canonical unit.
func Samples(dt models.DataType, rec *native.Record) []models.Sample {
	sourceName, sourceID := sourceAttribution(rec.Origin)

	if dt == models.TypeHeartRate {
		out := make([]models.Sample, 0, len(rec.Samples))
		for _, sr := range rec.Samples {
			out = append(out, models.Sample{
				DataType:   dt,
				Value:      sr.Value,
				Unit:       dt.Unit(),
				StartTime:  sr.Time,
				EndTime:    sr.Time,
				SourceName: sourceName,
				SourceID:   sourceID,
				Metadata:   rec.Metadata,
			})
		}
		return out
	}

	return []models.Sample{{
		DataType:   dt,
		Value:      rec.Value,
		Unit:       dt.Unit(),
		StartTime:  rec.StartTime,
		EndTime:    rec.EndTime,
		SourceName: sourceName,
		SourceID:   sourceID,
		Metadata:   rec.Metadata,
	}}
}

// sourceAttribution derives a human-readable source name and id from a
// record's origin. Name prefers "Manufacturer Model"; when neither
// device field is usable it falls back to the raw app identifier.
// Both fields are populated together whenever an origin exists.
func sourceAttribution(origin *native.Origin) (name, id string) {
	if origin == nil {
		return "", ""
	}

	device := strings.TrimSpace(strings.TrimSpace(origin.DeviceManufacturer) + " " + strings.TrimSpace(origin.DeviceModel))
	if device != "" {
		return device, origin.AppID
	}
	return origin.AppID, origin.AppID
}

// UnsupportedUnitError reports a unit override that does not match the
// data type's canonical unit.
type UnsupportedUnitError struct {
	Got      string
	Expected string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported unit %q: expected %q", e.Got, e.Expected)
}

// ValidateUnit checks a caller-supplied unit override against the
// type's canonical unit. Empty means "use canonical" and is accepted;
// anything else must match exactly. Units are never converted.
func ValidateUnit(dt models.DataType, unit string) error {
	if unit == "" || unit == dt.Unit() {
		return nil
	}
	return &UnsupportedUnitError{Got: unit, Expected: dt.Unit()}
}
