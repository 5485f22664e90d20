// ABOUTME: Paginated reader driving multi-page native fetches.
// ABOUTME: Accumulates normalized samples, sorts by time, applies order and limit.
package reader

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/openhealth/healthbridge/internal/models"
	"github.com/openhealth/healthbridge/internal/native"
	"github.com/openhealth/healthbridge/internal/normalize"
)

const (
	// DefaultPageSize is used for unbounded reads.
	DefaultPageSize = 100

	// MaxPageSize caps the per-page fetch volume regardless of the
	// caller's limit.
	MaxPageSize = 500
)

// ReadAll walks every page of native records for dt in [start, end),
// normalizes each record, and returns the merged samples ordered by
// their individual start time. limit <= 0 means unbounded; a positive
// limit bounds both the native fetch volume (by record count, during
// the loop) and the returned slice (by sample count, after sorting).
// A series record can therefore make the accumulator overshoot the
// limit temporarily; the final truncation restores the contract.
//
// Pages are fetched strictly sequentially. Any fetch error aborts the
// whole read; partial results are never returned.
func ReadAll(ctx context.Context, store native.Store, dt models.DataType, start, end time.Time, limit int, ascending bool) ([]models.Sample, error) {
	pageSize := DefaultPageSize
	if limit > 0 {
		pageSize = limit
		if pageSize > MaxPageSize {
			pageSize = MaxPageSize
		}
	}

	var (
		samples []models.Sample
		token   string
		fetched int
	)

	for {
		page, err := store.ReadRecords(ctx, native.RecordQuery{
			RecordType: dt.RecordType(),
			Start:      start,
			End:        end,
			PageSize:   pageSize,
			PageToken:  token,
		})
		if err != nil {
			return nil, fmt.Errorf("read %s records: %w", dt, err)
		}

		for i := range page.Records {
			samples = append(samples, normalize.Samples(dt, &page.Records[i])...)
		}
		fetched += len(page.Records)

		token = page.NextPageToken
		if token == "" {
			break
		}
		// Early stop counts native records, not output samples.
		if limit > 0 && fetched >= limit {
			break
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].StartTime.Before(samples[j].StartTime)
	})
	if !ascending {
		for i, j := 0, len(samples)-1; i < j; i, j = i+1, j-1 {
			samples[i], samples[j] = samples[j], samples[i]
		}
	}

	if limit > 0 && len(samples) > limit {
		samples = samples[:limit]
	}

	return samples, nil
}
