// ABOUTME: Tests for the write-side record builder.
// ABOUTME: Covers numeric clamping, series shaping, and metadata filtering.
package normalize

import (
	"testing"
	"time"

	"github.com/openhealth/healthbridge/internal/models"
)

func TestBuildRecordStepsClamped(t *testing.T) {
	start := time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		value float64
		want  float64
	}{
		{4200, 4200},
		{10.9, 10},
		{0, 0},
		{-5, 0},
	}

	for _, tt := range tests {
		rec := BuildRecord(models.TypeSteps, tt.value, start, start, nil)
		if rec.Value != tt.want {
			t.Errorf("steps %f -> %f, want %f", tt.value, rec.Value, tt.want)
		}
		if rec.RecordType != "StepsRecord" {
			t.Errorf("RecordType = %q, want StepsRecord", rec.RecordType)
		}
	}
}

func TestBuildRecordHeartRate(t *testing.T) {
	start := time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)

	rec := BuildRecord(models.TypeHeartRate, 61.4, start, start, nil)
	if rec.Value != 0 {
		t.Errorf("heart rate record has top-level Value %f, want sub-reading only", rec.Value)
	}
	if len(rec.Samples) != 1 {
		t.Fatalf("got %d sub-readings, want 1", len(rec.Samples))
	}
	if rec.Samples[0].Value != 61 {
		t.Errorf("rate = %f, want rounded 61", rec.Samples[0].Value)
	}
	if !rec.Samples[0].Time.Equal(start) {
		t.Errorf("sub-reading time = %v, want start instant %v", rec.Samples[0].Time, start)
	}

	// Negative rates are never submitted.
	rec = BuildRecord(models.TypeHeartRate, -3, start, start, nil)
	if rec.Samples[0].Value != 0 {
		t.Errorf("rate = %f, want clamped 0", rec.Samples[0].Value)
	}
}

func TestBuildRecordContinuousValuePassthrough(t *testing.T) {
	start := time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)

	rec := BuildRecord(models.TypeWeight, 82.53, start, start, nil)
	if rec.Value != 82.53 {
		t.Errorf("weight = %f, want 82.53 unchanged", rec.Value)
	}
}

func TestFilterMetadata(t *testing.T) {
	got := FilterMetadata(map[string]any{
		"session": "walk",
		"count":   3,
		"nested":  map[string]string{"a": "b"},
		"flag":    true,
		"device":  "watch",
	})

	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(got), got)
	}
	if got["session"] != "walk" || got["device"] != "watch" {
		t.Errorf("got %v, want string entries only", got)
	}
}

func TestFilterMetadataEmpty(t *testing.T) {
	if got := FilterMetadata(nil); got != nil {
		t.Errorf("FilterMetadata(nil) = %v, want nil", got)
	}
	if got := FilterMetadata(map[string]any{"n": 1}); got != nil {
		t.Errorf("all-dropped metadata = %v, want nil", got)
	}
}
