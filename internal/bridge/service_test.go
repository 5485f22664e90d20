// ABOUTME: Tests for the bridge service read/write operations.
// ABOUTME: Covers date defaults, validation ordering, clamping, and round trips.
package bridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhealth/healthbridge/internal/models"
	"github.com/openhealth/healthbridge/internal/native"
	"github.com/openhealth/healthbridge/internal/native/memstore"
	"github.com/openhealth/healthbridge/internal/native/unavailable"
	"github.com/openhealth/healthbridge/internal/normalize"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

// newTestService wires a Service over a fresh memstore with a fixed
// clock.
func newTestService(t *testing.T) (*Service, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	svc := NewService(store)
	svc.now = func() time.Time { return testNow }
	return svc, store
}

func TestIsAvailable(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.IsAvailable(context.Background())
	assert.True(t, res.Available)
	assert.Equal(t, "memory", res.Platform)
	assert.Empty(t, res.Reason)
}

func TestIsAvailableFallback(t *testing.T) {
	svc := NewService(unavailable.New("web", ""))

	res := svc.IsAvailable(context.Background())
	assert.False(t, res.Available)
	assert.Equal(t, "web", res.Platform)
	assert.NotEmpty(t, res.Reason)
}

func TestReadSamplesDefaults(t *testing.T) {
	svc, store := newTestService(t)

	inside := native.Record{
		RecordType: "StepsRecord",
		StartTime:  testNow.Add(-time.Hour),
		EndTime:    testNow.Add(-time.Hour),
		Value:      500,
	}
	outside := inside
	outside.StartTime = testNow.Add(-30 * time.Hour)
	outside.EndTime = outside.StartTime
	store.Seed(inside, outside)

	result, err := svc.ReadSamples(context.Background(), ReadRequest{DataType: "steps"})
	require.NoError(t, err)
	require.Len(t, result.Samples, 1)
	assert.Equal(t, 500.0, result.Samples[0].Value)
	assert.Equal(t, "count", result.Samples[0].Unit)

	// Window defaults to [now-24h, now); limit defaults to 100.
	require.Len(t, store.QueryLog, 1)
	q := store.QueryLog[0]
	assert.True(t, q.Start.Equal(testNow.Add(-24*time.Hour)), "start = %v", q.Start)
	assert.True(t, q.End.Equal(testNow), "end = %v", q.End)
	assert.Equal(t, DefaultReadLimit, q.PageSize)
}

func TestReadSamplesExplicitZeroLimitIsUnbounded(t *testing.T) {
	svc, store := newTestService(t)
	for i := 0; i < 120; i++ {
		store.Seed(native.Record{
			RecordType: "StepsRecord",
			StartTime:  testNow.Add(-time.Duration(i+1) * time.Minute),
			EndTime:    testNow.Add(-time.Duration(i+1) * time.Minute),
			Value:      float64(i),
		})
	}

	zero := 0
	result, err := svc.ReadSamples(context.Background(), ReadRequest{DataType: "steps", Limit: &zero})
	require.NoError(t, err)
	assert.Len(t, result.Samples, 120)
}

func TestReadSamplesMalformedDate(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.ReadSamples(context.Background(), ReadRequest{
		DataType:  "steps",
		StartDate: "yesterday",
	})
	require.Error(t, err)
	assert.Empty(t, store.QueryLog, "no native call on validation failure")
}

func TestReadSamplesInvalidRange(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.ReadSamples(context.Background(), ReadRequest{
		DataType:  "steps",
		StartDate: "2026-08-24T12:00:00Z",
		EndDate:   "2026-08-24T11:00:00Z",
	})
	require.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Empty(t, store.QueryLog)
}

func TestReadSamplesZeroDurationRange(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ReadSamples(context.Background(), ReadRequest{
		DataType:  "steps",
		StartDate: "2026-08-24T12:00:00Z",
		EndDate:   "2026-08-24T12:00:00Z",
	})
	assert.NoError(t, err)
}

func TestReadSamplesUnsupportedType(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ReadSamples(context.Background(), ReadRequest{DataType: "bloodGlucose"})
	var unsupported *models.UnsupportedDataTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "bloodGlucose", unsupported.Identifier)
}

func TestReadSamplesNativeFailure(t *testing.T) {
	svc, store := newTestService(t)
	cause := errors.New("ipc failure")
	store.ReadErr = cause

	_, err := svc.ReadSamples(context.Background(), ReadRequest{DataType: "steps"})
	var nativeErr *NativeOperationError
	require.ErrorAs(t, err, &nativeErr)
	assert.ErrorIs(t, err, cause)
}

func TestReadSamplesPlatformUnavailable(t *testing.T) {
	svc := NewService(unavailable.New("web", "no health store in browsers"))

	_, err := svc.ReadSamples(context.Background(), ReadRequest{DataType: "steps"})
	var unavail *PlatformUnavailableError
	require.ErrorAs(t, err, &unavail)
	assert.Equal(t, "no health store in browsers", unavail.Reason)
}

func TestSaveSampleDefaults(t *testing.T) {
	svc, store := newTestService(t)

	err := svc.SaveSample(context.Background(), SaveRequest{DataType: "steps", Value: 4200})
	require.NoError(t, err)

	records := store.Records()
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "StepsRecord", rec.RecordType)
	assert.Equal(t, 4200.0, rec.Value)
	assert.True(t, rec.StartTime.Equal(testNow), "start defaults to now")
	assert.True(t, rec.EndTime.Equal(testNow), "end defaults to start")
}

func TestSaveSampleUnitMismatch(t *testing.T) {
	svc, store := newTestService(t)

	err := svc.SaveSample(context.Background(), SaveRequest{
		DataType: "steps",
		Value:    100,
		Unit:     "kilogram",
	})

	var unsupported *normalize.UnsupportedUnitError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "kilogram", unsupported.Got)
	assert.Equal(t, "count", unsupported.Expected)
	assert.Empty(t, store.Records(), "no insert on unit mismatch")
}

func TestSaveSampleCanonicalUnitAccepted(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.SaveSample(context.Background(), SaveRequest{
		DataType: "weight",
		Value:    82.5,
		Unit:     "kilogram",
	})
	assert.NoError(t, err)
}

func TestSaveSampleInvalidRange(t *testing.T) {
	svc, store := newTestService(t)

	err := svc.SaveSample(context.Background(), SaveRequest{
		DataType:  "steps",
		Value:     100,
		StartDate: "2026-08-24T12:00:00Z",
		EndDate:   "2026-08-24T11:59:59Z",
	})
	require.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Empty(t, store.Records())
}

func TestSaveSampleClampsAndFiltersMetadata(t *testing.T) {
	svc, store := newTestService(t)

	err := svc.SaveSample(context.Background(), SaveRequest{
		DataType: "steps",
		Value:    -50,
		Metadata: map[string]any{"session": "walk", "count": 3},
	})
	require.NoError(t, err)

	records := store.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].Value, "negative counts are never submitted")
	assert.Equal(t, map[string]string{"session": "walk"}, records[0].Metadata)
}

func TestSaveSampleNativeFailure(t *testing.T) {
	svc, store := newTestService(t)
	cause := errors.New("insert rejected")
	store.InsertErr = cause

	err := svc.SaveSample(context.Background(), SaveRequest{DataType: "steps", Value: 1})
	var nativeErr *NativeOperationError
	require.ErrorAs(t, err, &nativeErr)
	assert.ErrorIs(t, err, cause)
}

func TestWriteReadRoundTrip(t *testing.T) {
	svc, store := newTestService(t)
	store.InsertOrigin = &native.Origin{AppID: "com.example.shell"}

	start := testNow.Add(-2 * time.Hour)
	err := svc.SaveSample(context.Background(), SaveRequest{
		DataType:  "weight",
		Value:     82.5,
		StartDate: start.Format(time.RFC3339),
	})
	require.NoError(t, err)

	result, err := svc.ReadSamples(context.Background(), ReadRequest{DataType: "weight"})
	require.NoError(t, err)
	require.Len(t, result.Samples, 1)

	s := result.Samples[0]
	assert.InDelta(t, 82.5, s.Value, 1e-9)
	assert.Equal(t, "kilogram", s.Unit)
	assert.Equal(t, "com.example.shell", s.SourceName)
	assert.Equal(t, "com.example.shell", s.SourceID)
	assert.Equal(t, start.UTC().Format(models.TimeLayout), s.StartDate)
}
