// Package models provides request and response models for the GridRoute API.
package models

import "time"

// Point represents a geographic coordinate on the wire.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HealthStatus represents the health status of the service.
type HealthStatus string

const (
	HealthStatusOK       HealthStatus = "OK"
	HealthStatusDegraded HealthStatus = "DEGRADED"
	HealthStatusFail     HealthStatus = "FAIL"
)

// Health is the body of the health and readiness endpoints.
type Health struct {
	Status  HealthStatus           `json:"status"`
	Time    Timestamp              `json:"time"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// GraphStatus describes the currently loaded graph.
type GraphStatus struct {
	Version  string    `json:"version"`
	LoadedAt Timestamp `json:"loadedAt"`
	MinLat   float64   `json:"minLat"`
	MaxLat   float64   `json:"maxLat"`
	MinLon   float64   `json:"minLon"`
	MaxLon   float64   `json:"maxLon"`
}

// Timestamp is a helper type for time.Time with RFC3339 JSON formatting.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, string(data[1:len(data)-1]))
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}
