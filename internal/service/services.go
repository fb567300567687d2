// Package service contains the business logic.
//
// It sits between the handler and repository layers: the handler holds a
// HolidayProvider, and the provider is backed by whichever source the
// configuration selects (a package in internal/source or a repository).
package service

import (
	"fmt"

	"github.com/tessdev/holiday-service/internal/config"
	"github.com/tessdev/holiday-service/internal/repository"
	"github.com/tessdev/holiday-service/internal/server"
	"github.com/tessdev/holiday-service/internal/source"
)

type Services struct {
	Holidays *HolidayService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	backing, err := NewSource(&s.Config.Holidays, repos)
	if err != nil {
		return nil, err
	}

	return &Services{
		Holidays: NewHolidayService(backing, s.Config.Holidays.Source, *s.Logger),
	}, nil
}

// NewSource builds the backing source named by cfg.Source. Database
// sources need their repository in repos.
func NewSource(cfg *config.HolidaysConfig, repos *repository.Repositories) (HolidayProvider, error) {
	switch cfg.Source {
	case config.SourceStatic:
		return source.ParseStatic(cfg.Static)

	case config.SourceCalendar:
		return source.NewCalendar(cfg.Calendar.Country, cfg.Calendar.Year, cfg.Calendar.Observed)

	case config.SourceFile:
		return source.NewFile(cfg.File.Path, cfg.File.Format)

	case config.SourceRemote:
		return source.NewRemote(cfg.Remote), nil

	case config.SourcePostgres:
		if repos == nil || repos.Holidays == nil {
			return nil, fmt.Errorf("holiday source %q needs a database connection", cfg.Source)
		}
		return repos.Holidays, nil

	case config.SourceSQLite:
		if repos == nil || repos.SQLiteHolidays == nil {
			return nil, fmt.Errorf("holiday source %q needs a sqlite database", cfg.Source)
		}
		return repos.SQLiteHolidays, nil

	default:
		return nil, fmt.Errorf("unknown holiday source %q", cfg.Source)
	}
}
