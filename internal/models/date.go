package models

import (
	"strings"
	"time"
)

// Date is a calendar date serialized as "2006-01-02". Documents written by
// older versions of the backend stored full RFC 3339 timestamps, so both
// forms are accepted on read.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time, keeping only the calendar day.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// ParseDate parses a "2006-01-02" or RFC 3339 value.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

// UnmarshalJSON accepts "2006-01-02", RFC 3339, empty string, or null.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// MarshalJSON writes the date-only form, or an empty string for the zero value.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls on a later calendar day than other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}
