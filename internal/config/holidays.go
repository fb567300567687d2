package config

import (
	"fmt"
	"time"
)

// Holiday source kinds accepted by holidays.source.
const (
	SourceStatic   = "static"
	SourceCalendar = "calendar"
	SourceFile     = "file"
	SourceRemote   = "remote"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// HolidaysConfig selects and configures where holiday records come from.
//
// Exactly one source is active. The blocks for the other sources may be
// left at their defaults.
type HolidaysConfig struct {
	// Source picks the backing source of the holiday provider.
	Source string `koanf:"source" validate:"required,oneof=static calendar file remote postgres sqlite"`

	// Static lists "name=YYYY-MM-DD" entries served in the given order.
	Static []string `koanf:"static"`

	Calendar CalendarSourceConfig `koanf:"calendar"`
	File     FileSourceConfig     `koanf:"file"`
	Remote   RemoteSourceConfig   `koanf:"remote"`
}

// CalendarSourceConfig computes national holidays with rickar/cal.
type CalendarSourceConfig struct {
	// Country is a lowercase ISO 3166 alpha-2 code (us, gb).
	Country string `koanf:"country" validate:"required,oneof=us gb"`

	// Year to compute. 0 means "the current year at request time".
	Year int `koanf:"year" validate:"gte=0"`

	// Observed reports the observed (shifted off the weekend) date
	// instead of the actual date.
	Observed bool `koanf:"observed"`
}

// FileSourceConfig reads holidays from a JSON, TOML or YAML document.
type FileSourceConfig struct {
	Path string `koanf:"path"`

	// Format overrides detection by file extension.
	Format string `koanf:"format" validate:"omitempty,oneof=json toml yaml"`
}

// RemoteSourceConfig fetches holidays from an HTTP endpoint returning JSON.
type RemoteSourceConfig struct {
	URL string `koanf:"url" validate:"omitempty,url"`

	// ItemsPath is a gjson path to the array of holiday objects.
	// Empty means the response body itself is the array.
	ItemsPath string `koanf:"items_path"`

	NameField  string        `koanf:"name_field" validate:"required"`
	DateField  string        `koanf:"date_field" validate:"required"`
	DateLayout string        `koanf:"date_layout" validate:"required"`
	Timeout    time.Duration `koanf:"timeout" validate:"min=1ms"`
}

// DefaultHolidaysConfig serves this year's US federal holidays.
func DefaultHolidaysConfig() HolidaysConfig {
	return HolidaysConfig{
		Source: SourceCalendar,
		Calendar: CalendarSourceConfig{
			Country: "us",
		},
		Remote: RemoteSourceConfig{
			NameField:  "name",
			DateField:  "date",
			DateLayout: "2006-01-02",
			Timeout:    10 * time.Second,
		},
	}
}

// Validate checks that the block required by the selected source is present.
func (h *HolidaysConfig) Validate(cfg *Config) error {
	switch h.Source {
	case SourceFile:
		if h.File.Path == "" {
			return fmt.Errorf("holidays.file.path is required for source %q", h.Source)
		}
	case SourceRemote:
		if h.Remote.URL == "" {
			return fmt.Errorf("holidays.remote.url is required for source %q", h.Source)
		}
	case SourcePostgres:
		if cfg.Database == nil {
			return fmt.Errorf("database config is required for source %q", h.Source)
		}
	case SourceSQLite:
		if cfg.SQLite == nil {
			return fmt.Errorf("sqlite config is required for source %q", h.Source)
		}
	}
	return nil
}
