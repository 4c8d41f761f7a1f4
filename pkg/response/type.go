package response

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a date that marshals as DateFormat in its own location.
type Date time.Time

// NewDate converts an optional time; nil stays nil so the field is omitted.
func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := Date(*t)
	return &d
}

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// UnmarshalJSON implements json.Unmarshaler for Date. The result is
// midnight in the local zone.
func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := parseJSONTime(b, DateFormat)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// DateTime is a datetime that marshals as DateTimeFormat in its own location.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

// NewDateTime converts an optional time; nil stays nil.
func NewDateTime(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	d := DateTime(*t)
	return &d
}

// UnmarshalJSON implements json.Unmarshaler for DateTime, in the local zone.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	t, err := parseJSONTime(b, DateTimeFormat)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

func parseJSONTime(b []byte, layout string) (time.Time, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("response: parsing %q: %w", s, err)
	}
	return t, nil
}
