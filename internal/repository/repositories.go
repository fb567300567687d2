// Package repository handles all interactions with the database.
//
// It contains the raw SQL that reads holiday records, keeping SQL out of
// the service layer. Repositories never write.
package repository

import (
	"github.com/tessdev/holiday-service/internal/server"
)

// Repositories is a container for all repository instances.
//
// Only the repository matching the configured holiday source is set.
type Repositories struct {
	Holidays       *HolidayRepository
	SQLiteHolidays *SQLiteHolidayRepository
}

// NewRepositories builds the repositories for whichever database the
// server opened.
func NewRepositories(s *server.Server) *Repositories {
	repos := &Repositories{}
	threshold := s.Config.Observability.Logging.SlowQueryThreshold

	if s.DB != nil {
		repos.Holidays = NewHolidayRepository(s.DB.Pool, *s.Logger, threshold)
	}
	if s.SQLite != nil {
		repos.SQLiteHolidays = NewSQLiteHolidayRepository(s.SQLite.DB, *s.Logger, threshold)
	}

	return repos
}
