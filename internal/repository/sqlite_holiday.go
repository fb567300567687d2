package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/tessdev/holiday-service/internal/model"
	"github.com/tessdev/holiday-service/internal/sqlerr"
)

// SQLiteHolidayRepository reads holiday records from a SQLite file.
// holiday_date holds YYYY-MM-DD text.
type SQLiteHolidayRepository struct {
	db            *sql.DB
	logger        zerolog.Logger
	slowThreshold time.Duration
}

func NewSQLiteHolidayRepository(db *sql.DB, logger zerolog.Logger, slowThreshold time.Duration) *SQLiteHolidayRepository {
	return &SQLiteHolidayRepository{
		db:            db,
		logger:        logger.With().Str("repository", "holidays").Str("store", "sqlite").Logger(),
		slowThreshold: slowThreshold,
	}
}

func (r *SQLiteHolidayRepository) GetAll(ctx context.Context) ([]model.Holiday, error) {
	start := time.Now()

	rows, err := r.db.QueryContext(ctx, listHolidaysQuery)
	if err != nil {
		return nil, errors.Wrap(sqlerr.Classify(err), "query holidays")
	}
	defer rows.Close()

	holidays := []model.Holiday{}
	for rows.Next() {
		var name, rawDate string
		if err := rows.Scan(&name, &rawDate); err != nil {
			return nil, errors.Wrap(err, "scan holiday")
		}

		date, err := model.ParseDate(rawDate)
		if err != nil {
			return nil, errors.Wrapf(err, "holiday %q", name)
		}

		h := model.Holiday{Name: name, Date: date}
		if err := h.Validate(); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(sqlerr.Classify(err), "read holidays")
	}

	logSlowQuery(r.logger, r.slowThreshold, time.Since(start), len(holidays))

	return holidays, nil
}
