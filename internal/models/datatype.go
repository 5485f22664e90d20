// ABOUTME: DataType catalog for health data types.
// ABOUTME: Maps each type to permission tokens, canonical unit, and native record identifier.
package models

import "fmt"

// DataType identifies a kind of health measurement.
type DataType string

const (
	TypeSteps         DataType = "steps"
	TypeDistance      DataType = "distance"
	TypeCalories      DataType = "calories"
	TypeHeartRate     DataType = "heartRate"
	TypeWeight        DataType = "weight"
	TypeSleepAnalysis DataType = "sleepAnalysis"
	TypeHRV           DataType = "hrv"
)

// TypeInfo describes how a DataType maps onto the native health store.
type TypeInfo struct {
	ReadPermission  string
	WritePermission string
	Unit            string
	RecordType      string
}

// Catalog maps each supported data type to its native bindings.
// The identifier set is closed: anything not in this table is unsupported.
var Catalog = map[DataType]TypeInfo{
	TypeSteps: {
		ReadPermission:  "android.permission.health.READ_STEPS",
		WritePermission: "android.permission.health.WRITE_STEPS",
		Unit:            "count",
		RecordType:      "StepsRecord",
	},
	TypeDistance: {
		ReadPermission:  "android.permission.health.READ_DISTANCE",
		WritePermission: "android.permission.health.WRITE_DISTANCE",
		Unit:            "meter",
		RecordType:      "DistanceRecord",
	},
	TypeCalories: {
		ReadPermission:  "android.permission.health.READ_TOTAL_CALORIES_BURNED",
		WritePermission: "android.permission.health.WRITE_TOTAL_CALORIES_BURNED",
		Unit:            "kilocalorie",
		RecordType:      "TotalCaloriesBurnedRecord",
	},
	TypeHeartRate: {
		ReadPermission:  "android.permission.health.READ_HEART_RATE",
		WritePermission: "android.permission.health.WRITE_HEART_RATE",
		Unit:            "bpm",
		RecordType:      "HeartRateRecord",
	},
	TypeWeight: {
		ReadPermission:  "android.permission.health.READ_WEIGHT",
		WritePermission: "android.permission.health.WRITE_WEIGHT",
		Unit:            "kilogram",
		RecordType:      "WeightRecord",
	},
	TypeSleepAnalysis: {
		ReadPermission:  "android.permission.health.READ_SLEEP",
		WritePermission: "android.permission.health.WRITE_SLEEP",
		Unit:            "minute",
		RecordType:      "SleepSessionRecord",
	},
	TypeHRV: {
		ReadPermission:  "android.permission.health.READ_HEART_RATE_VARIABILITY",
		WritePermission: "android.permission.health.WRITE_HEART_RATE_VARIABILITY",
		Unit:            "ms",
		RecordType:      "HeartRateVariabilityRmssdRecord",
	},
}

// AllDataTypes lists every supported data type in display order.
var AllDataTypes = []DataType{
	TypeSteps, TypeDistance, TypeCalories, TypeHeartRate,
	TypeWeight, TypeSleepAnalysis, TypeHRV,
}

// Resolve maps a data type name onto its DataType. The match is
// case-sensitive and exact; anything else is an UnsupportedDataTypeError.
func Resolve(name string) (DataType, error) {
	dt := DataType(name)
	if _, ok := Catalog[dt]; !ok {
		return "", &UnsupportedDataTypeError{Identifier: name}
	}
	return dt, nil
}

// Info returns the catalog entry for a data type.
func (dt DataType) Info() TypeInfo {
	return Catalog[dt]
}

// Unit returns the canonical unit for a data type.
func (dt DataType) Unit() string {
	return Catalog[dt].Unit
}

// RecordType returns the native record identifier for a data type.
func (dt DataType) RecordType() string {
	return Catalog[dt].RecordType
}

// UnsupportedDataTypeError reports a data type name outside the catalog.
type UnsupportedDataTypeError struct {
	Identifier string
}

func (e *UnsupportedDataTypeError) Error() string {
	return fmt.Sprintf("unsupported data type: %q", e.Identifier)
}
