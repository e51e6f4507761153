package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// RawValue keeps a field exactly as the upstream feed delivered it. JSON
// numbers and strings are both accepted; interpretation is deferred to the
// consumer so one bad field only discards its own record.
type RawValue string

func (v *RawValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		*v = ""
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
	default:
		*v = RawValue(trimmed)
	}
	return nil
}

func (v RawValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

// Float parses the value as a finite float64.
func (v RawValue) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite value %q", string(v))
	}
	return f, nil
}

// Int parses the value as a number and truncates it toward zero, so "88.5"
// and a JSON 90.0 both read as whole confidences.
func (v RawValue) Int() (int, error) {
	f, err := v.Float()
	if err != nil {
		return 0, err
	}
	return int(math.Trunc(f)), nil
}

// FireIncident is one active-fire detection as reported by a satellite feed.
type FireIncident struct {
	Latitude   RawValue  `json:"latitude"`
	Longitude  RawValue  `json:"longitude"`
	Confidence RawValue  `json:"confidence"`
	AcquiredAt time.Time `json:"acquired_at"`
}
