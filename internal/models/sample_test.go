// ABOUTME: Tests for the Sample wire shape.
// ABOUTME: Validates timestamp formatting precision and UTC normalization.
package models

import (
	"testing"
	"time"
)

func TestSampleJSONTimestamps(t *testing.T) {
	loc := time.FixedZone("CST", -6*60*60)
	start := time.Date(2026, 8, 24, 7, 30, 15, 123456789, loc)

	s := Sample{
		DataType:  TypeWeight,
		Value:     82.5,
		Unit:      "kilogram",
		StartTime: start,
		EndTime:   start,
	}

	got := s.JSON()
	want := "2026-08-24T13:30:15.123Z"
	if got.StartDate != want {
		t.Errorf("StartDate = %q, want %q", got.StartDate, want)
	}
	if got.EndDate != want {
		t.Errorf("EndDate = %q, want %q", got.EndDate, want)
	}
}

func TestSampleJSONConsistentPrecision(t *testing.T) {
	// Whole-second timestamps keep the millisecond field.
	s := Sample{
		DataType:  TypeSteps,
		Value:     100,
		Unit:      "count",
		StartTime: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 8, 24, 13, 0, 0, 0, time.UTC),
	}

	got := s.JSON()
	if got.StartDate != "2026-08-24T12:00:00.000Z" {
		t.Errorf("StartDate = %q, want millisecond precision", got.StartDate)
	}
}
