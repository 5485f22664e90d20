// ABOUTME: Native record shapes exchanged with Store adapters.
// ABOUTME: Record, sub-readings, data origin, and paginated query types.
package native

import "time"

// Record is one native health record as the platform store holds it.
// Single-valued record kinds carry Value; series kinds (heart rate)
// carry Samples instead, one sub-reading per measurement.
type Record struct {
	ID         string            `json:"id"`
	RecordType string            `json:"recordType"`
	StartTime  time.Time         `json:"startTime"`
	EndTime    time.Time         `json:"endTime"`
	Value      float64           `json:"value"`
	Samples    []SubReading      `json:"samples,omitempty"`
	Origin     *Origin           `json:"origin,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// SubReading is one timestamped measurement inside a series record.
type SubReading struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Origin identifies where a record came from: the recording app and,
// when known, the device that produced the measurement.
type Origin struct {
	AppID              string `json:"appId"`
	DeviceManufacturer string `json:"deviceManufacturer,omitempty"`
	DeviceModel        string `json:"deviceModel,omitempty"`
}

// RecordQuery selects one page of records of a single kind within a
// half-open [Start, End) time window. PageToken is the opaque
// continuation token from the previous page, empty for the first.
type RecordQuery struct {
	RecordType string
	Start      time.Time
	End        time.Time
	PageSize   int
	PageToken  string
}

// RecordPage is one fetched page. NextPageToken is empty on the last
// page.
type RecordPage struct {
	Records       []Record
	NextPageToken string
}
