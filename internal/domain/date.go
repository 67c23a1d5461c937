package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const mlbDateLayout = "2006-01-02"

// MlbDate is a calendar date. The zero value means "not set".
type MlbDate struct {
	t time.Time
}

// NewMlbDate truncates t to its calendar date in t's location.
func NewMlbDate(t time.Time) MlbDate {
	if t.IsZero() {
		return MlbDate{}
	}
	y, m, d := t.Date()
	return MlbDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseMlbDate accepts a YYYY-MM-DD or RFC3339 string, a time.Time or an MlbDate.
func ParseMlbDate(v any) (MlbDate, error) {
	switch val := v.(type) {
	case MlbDate:
		return val, nil
	case time.Time:
		return NewMlbDate(val), nil
	case *time.Time:
		if val == nil {
			return MlbDate{}, nil
		}
		return NewMlbDate(*val), nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return MlbDate{}, nil
		}
		if t, err := time.Parse(mlbDateLayout, s); err == nil {
			return NewMlbDate(t), nil
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return NewMlbDate(t), nil
		}
		if len(s) >= len(mlbDateLayout) {
			if t, err := time.Parse(mlbDateLayout, s[:len(mlbDateLayout)]); err == nil {
				return NewMlbDate(t), nil
			}
		}
		return MlbDate{}, fmt.Errorf("domain: unrecognized date %q", s)
	case nil:
		return MlbDate{}, nil
	}
	return MlbDate{}, fmt.Errorf("domain: unsupported date type %T", v)
}

// MustParseMlbDate is ParseMlbDate for constants; invalid input yields the zero date.
func MustParseMlbDate(v any) MlbDate {
	d, _ := ParseMlbDate(v)
	return d
}

// IsZero reports whether the date is unset.
func (d MlbDate) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the date at midnight UTC.
func (d MlbDate) Time() time.Time {
	return d.t
}

// Year returns the calendar year.
func (d MlbDate) Year() int {
	return d.t.Year()
}

// AddDays returns the date shifted by n days.
func (d MlbDate) AddDays(n int) MlbDate {
	if d.IsZero() {
		return d
	}
	return MlbDate{t: d.t.AddDate(0, 0, n)}
}

// Format renders the date with a Go time layout.
func (d MlbDate) Format(layout string) string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(layout)
}

// String renders YYYY-MM-DD.
func (d MlbDate) String() string {
	return d.Format(mlbDateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD" or null.
func (d MlbDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts the formats understood by ParseMlbDate.
func (d *MlbDate) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*d = MlbDate{}
		return nil
	}
	parsed, err := ParseMlbDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
