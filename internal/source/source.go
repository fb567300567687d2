// Package source contains the non-database backing sources of the
// holiday provider.
//
// Every source satisfies the same contract as service.HolidayProvider:
//
//	GetAll(ctx) ([]model.Holiday, error)
//
// Sources never filter, never retry and never cache. They return the
// records in the order their backing data defines (or, for computed
// calendars, in date order) and report any failure as an error. Turning
// that error into "holiday data unavailable" is the service layer's job.
package source

import (
	"github.com/tessdev/holiday-service/internal/model"
)

// cloneHolidays returns a copy so callers can never mutate a source's list.
func cloneHolidays(holidays []model.Holiday) []model.Holiday {
	out := make([]model.Holiday, len(holidays))
	copy(out, holidays)
	return out
}
