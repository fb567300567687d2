package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/tessdev/holiday-service/internal/model"
	"github.com/tessdev/holiday-service/internal/sqlerr"
)

// listHolidaysQuery returns holidays in date order; id breaks ties so the
// order is stable across calls.
const listHolidaysQuery = `SELECT name, holiday_date FROM holidays ORDER BY holiday_date, id`

// Querier is the part of *pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// HolidayRepository reads holiday records from PostgreSQL.
type HolidayRepository struct {
	db            Querier
	logger        zerolog.Logger
	slowThreshold time.Duration
}

// NewHolidayRepository creates a repository on db. Reads slower than
// slowThreshold are logged as warnings; 0 disables that.
func NewHolidayRepository(db Querier, logger zerolog.Logger, slowThreshold time.Duration) *HolidayRepository {
	return &HolidayRepository{
		db:            db,
		logger:        logger.With().Str("repository", "holidays").Str("store", "postgres").Logger(),
		slowThreshold: slowThreshold,
	}
}

func (r *HolidayRepository) GetAll(ctx context.Context) ([]model.Holiday, error) {
	start := time.Now()

	rows, err := r.db.Query(ctx, listHolidaysQuery)
	if err != nil {
		return nil, errors.Wrap(sqlerr.Classify(err), "query holidays")
	}

	holidays, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Holiday, error) {
		var (
			name string
			date time.Time
		)
		if err := row.Scan(&name, &date); err != nil {
			return model.Holiday{}, err
		}

		h := model.Holiday{Name: name, Date: model.DateOf(date)}
		return h, h.Validate()
	})
	if err != nil {
		return nil, errors.Wrap(sqlerr.Classify(err), "read holidays")
	}

	logSlowQuery(r.logger, r.slowThreshold, time.Since(start), len(holidays))

	return holidays, nil
}

func logSlowQuery(logger zerolog.Logger, threshold, elapsed time.Duration, count int) {
	if threshold <= 0 || elapsed < threshold {
		return
	}

	logger.Warn().
		Dur("duration", elapsed).
		Dur("threshold", threshold).
		Int("count", count).
		Msg("slow holidays query")
}
