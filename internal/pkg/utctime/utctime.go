// Package utctime handles the wire format for slot timestamps: UTC, rendered
// without an offset.
package utctime

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const Layout = "2006-01-02T15:04:05"

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Accepted naive layouts, tried after RFC 3339.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Parse converts offset-bearing input to UTC and treats naive input as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

// Normalize drops the zone after converting to UTC.
func Normalize(t time.Time) time.Time {
	return t.UTC()
}

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Time is a time.Time that marshals in the naive UTC wire format.
type Time struct {
	time.Time
}

func From(t time.Time) Time {
	return Time{Time: t.UTC()}
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(Format(t.Time))
}

func (t *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidTimestamp
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
