// ABOUTME: Sample model for normalized health measurements.
// ABOUTME: One timestamped value in the common cross-platform schema.
package models

import "time"

// TimeLayout is the wire format for sample timestamps: RFC 3339 with
// millisecond precision, always UTC.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Sample is one normalized health measurement. Instantaneous samples
// have StartTime == EndTime. Samples are transient: they exist per
// read/write call and are never persisted by this layer.
type Sample struct {
	DataType   DataType          `json:"dataType"`
	Value      float64           `json:"value"`
	Unit       string            `json:"unit"`
	StartTime  time.Time         `json:"-"`
	EndTime    time.Time         `json:"-"`
	SourceName string            `json:"sourceName,omitempty"`
	SourceID   string            `json:"sourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// SampleJSON is the JSON-facing shape of a Sample, with timestamps
// rendered in TimeLayout.
type SampleJSON struct {
	DataType   string            `json:"dataType"`
	Value      float64           `json:"value"`
	Unit       string            `json:"unit"`
	StartDate  string            `json:"startDate"`
	EndDate    string            `json:"endDate"`
	SourceName string            `json:"sourceName,omitempty"`
	SourceID   string            `json:"sourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// JSON converts a Sample to its wire shape.
func (s Sample) JSON() SampleJSON {
	return SampleJSON{
		DataType:   string(s.DataType),
		Value:      s.Value,
		Unit:       s.Unit,
		StartDate:  s.StartTime.UTC().Format(TimeLayout),
		EndDate:    s.EndTime.UTC().Format(TimeLayout),
		SourceName: s.SourceName,
		SourceID:   s.SourceID,
		Metadata:   s.Metadata,
	}
}
