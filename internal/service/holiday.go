package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tessdev/holiday-service/internal/model"
	"github.com/tessdev/holiday-service/internal/sqlerr"
)

// ErrHolidaysUnavailable is the single failure a provider reports: the
// backing source could not produce the holiday list.
var ErrHolidaysUnavailable = errors.New("holiday data unavailable")

// HolidayProvider produces the complete, unfiltered list of holidays in
// the order the backing source defines.
type HolidayProvider interface {
	GetAll(ctx context.Context) ([]model.Holiday, error)
}

// HolidayService is the provider the HTTP layer talks to. It delegates to
// one backing source per call and normalizes its result.
type HolidayService struct {
	source     HolidayProvider
	sourceName string
	logger     zerolog.Logger
}

// NewHolidayService wraps source. sourceName only labels logs.
func NewHolidayService(source HolidayProvider, sourceName string, logger zerolog.Logger) *HolidayService {
	return &HolidayService{
		source:     source,
		sourceName: sourceName,
		logger:     logger.With().Str("service", "holidays").Str("source", sourceName).Logger(),
	}
}

// Source names the configured backing source.
func (s *HolidayService) Source() string {
	return s.sourceName
}

// GetAll asks the source once. There is no retry and no fallback: any
// source error is reported as ErrHolidaysUnavailable, and an empty source
// yields an empty, non-nil slice.
func (s *HolidayService) GetAll(ctx context.Context) ([]model.Holiday, error) {
	holidays, err := s.source.GetAll(ctx)
	if err != nil {
		event := s.logger.Error().Err(err)
		if code := sqlerr.ErrCode(err); code != sqlerr.Other {
			event = event.Str("db_error_code", string(code))
		}
		event.Msg("holiday source failed")

		return nil, fmt.Errorf("%w: %w", ErrHolidaysUnavailable, err)
	}

	out := make([]model.Holiday, len(holidays))
	copy(out, holidays)

	s.logger.Debug().Int("count", len(out)).Msg("holidays loaded")

	return out, nil
}
