// ABOUTME: Tests for the Badger-backed dev store.
// ABOUTME: Covers record pagination, window filtering, and grant persistence.
package devstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhealth/healthbridge/internal/native"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenDefaults(t *testing.T) {
	store := openTestStore(t)

	assert.Equal(t, "dev", store.Platform())
	available, reason := store.Available(context.Background())
	assert.True(t, available)
	assert.Empty(t, reason)
}

func TestInsertAssignsIDAndOrigin(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rec := &native.Record{
		RecordType: "WeightRecord",
		StartTime:  time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC),
		Value:      82.5,
	}
	require.NoError(t, store.InsertRecord(ctx, rec))

	page, err := store.ReadRecords(ctx, native.RecordQuery{
		RecordType: "WeightRecord",
		Start:      rec.StartTime.Add(-time.Hour),
		End:        rec.StartTime.Add(time.Hour),
		PageSize:   10,
	})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)

	got := page.Records[0]
	assert.NotEmpty(t, got.ID)
	require.NotNil(t, got.Origin)
	assert.Equal(t, devAppID, got.Origin.AppID)
	assert.Equal(t, 82.5, got.Value)
}

func TestReadRecordsPagination(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, store.InsertRecord(ctx, &native.Record{
			ID:         fmt.Sprintf("rec-%d", i),
			RecordType: "StepsRecord",
			StartTime:  base.Add(time.Duration(i) * time.Hour),
			EndTime:    base.Add(time.Duration(i) * time.Hour),
			Value:      float64(i),
		}))
	}

	var (
		token string
		pages int
		seen  []float64
	)
	for {
		page, err := store.ReadRecords(ctx, native.RecordQuery{
			RecordType: "StepsRecord",
			Start:      base,
			End:        base.Add(24 * time.Hour),
			PageSize:   3,
			PageToken:  token,
		})
		require.NoError(t, err)
		pages++
		for _, rec := range page.Records {
			seen = append(seen, rec.Value)
		}
		token = page.NextPageToken
		if token == "" {
			break
		}
	}

	assert.Equal(t, 3, pages)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6}, seen, "pages walk records in time order without gaps or repeats")
}

func TestReadRecordsWindowIsHalfOpen(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	for i, at := range []time.Time{base.Add(-time.Hour), base, base.Add(time.Hour), base.Add(2 * time.Hour)} {
		require.NoError(t, store.InsertRecord(ctx, &native.Record{
			ID:         fmt.Sprintf("rec-%d", i),
			RecordType: "StepsRecord",
			StartTime:  at,
			EndTime:    at,
			Value:      float64(i),
		}))
	}

	page, err := store.ReadRecords(ctx, native.RecordQuery{
		RecordType: "StepsRecord",
		Start:      base,
		End:        base.Add(2 * time.Hour),
		PageSize:   10,
	})
	require.NoError(t, err)
	require.Len(t, page.Records, 2)
	assert.Equal(t, 1.0, page.Records[0].Value, "start boundary included")
	assert.Equal(t, 2.0, page.Records[1].Value, "end boundary excluded")
}

func TestReadRecordsIgnoresOtherKinds(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	at := time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)
	require.NoError(t, store.InsertRecord(ctx, &native.Record{RecordType: "StepsRecord", StartTime: at, EndTime: at, Value: 1}))
	require.NoError(t, store.InsertRecord(ctx, &native.Record{RecordType: "WeightRecord", StartTime: at, EndTime: at, Value: 80}))

	page, err := store.ReadRecords(ctx, native.RecordQuery{
		RecordType: "StepsRecord",
		Start:      at.Add(-time.Hour),
		End:        at.Add(time.Hour),
		PageSize:   10,
	})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "StepsRecord", page.Records[0].RecordType)
}

func TestGrantsPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(dir, "")
	require.NoError(t, err)
	require.NoError(t, store.RequestPermissions(ctx, []string{"android.permission.health.READ_STEPS"}))
	require.NoError(t, store.Close())

	store, err = Open(dir, "")
	require.NoError(t, err)
	defer store.Close()

	granted, err := store.GrantedPermissions(ctx)
	require.NoError(t, err)
	assert.True(t, granted["android.permission.health.READ_STEPS"])
}

func TestRevokePermissions(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RequestPermissions(ctx, []string{"a", "b"}))
	require.NoError(t, store.RevokePermissions([]string{"a"}))

	granted, err := store.GrantedPermissions(ctx)
	require.NoError(t, err)
	assert.False(t, granted["a"])
	assert.True(t, granted["b"])
}
