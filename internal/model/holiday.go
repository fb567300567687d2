// Package model holds the domain entities shared by every layer.
//
// The service only knows one entity, the Holiday: a display name
// attached to a calendar date. Nothing here talks to HTTP or storage.
package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Holiday is a single named calendar holiday.
//
// Serialized as:
//
//	{ "name": "New Year's Day", "date": "2024-01-01" }
//
// Holidays have no identity beyond the (name, date) pair and nobody
// mutates them once a provider has handed them out.
type Holiday struct {
	Name string `json:"name" toml:"name" yaml:"name"`
	Date Date   `json:"date" toml:"date" yaml:"date"`
}

// ErrInvalidHoliday is returned by Validate for records that cannot be served.
var ErrInvalidHoliday = errors.New("invalid holiday")

// Validate rejects records read from untrusted sources (files, remote APIs,
// database rows) that would serialize into something other than a
// non-empty name and a YYYY-MM-DD date.
func (h Holiday) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return errors.Wrap(ErrInvalidHoliday, "name is required")
	}
	if h.Date.IsZero() {
		return errors.Wrapf(ErrInvalidHoliday, "date is required for %q", h.Name)
	}
	return nil
}

// ValidateAll validates every record and reports the index of the first bad one.
func ValidateAll(holidays []Holiday) error {
	for i, h := range holidays {
		if err := h.Validate(); err != nil {
			return errors.Wrapf(err, "holiday #%d", i)
		}
	}
	return nil
}
