package model

import (
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the wire format of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar date with day precision.
//
// It carries no clock and no timezone. Internally it is stored as midnight
// UTC so that two Dates for the same day always compare equal.
//
// Date implements encoding.TextMarshaler / TextUnmarshaler, which is what
// encoding/json, go-toml and yaml.v3 all fall back to, so every source
// format shares the same "YYYY-MM-DD" representation.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its parts. Out-of-range parts are normalized
// the same way time.Date normalizes them (e.g. Feb 30 -> Mar 1/2).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
// The clock and zone are dropped.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(value string) (Date, error) {
	return ParseDateLayout(value, DateLayout)
}

// ParseDateLayout parses value with a custom time layout, e.g. "20060102"
// for APIs that send compact dates. Clock fields in the layout are dropped.
func ParseDateLayout(value, layout string) (Date, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return Date{}, errors.Wrapf(err, "parse date %q", value)
	}
	return DateOf(t), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// String renders the date as "YYYY-MM-DD". The zero Date renders as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return nil, errors.New("cannot marshal zero date")
	}
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
