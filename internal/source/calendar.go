package source

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/us"

	"github.com/tessdev/holiday-service/internal/model"
)

// nationalHolidays lists the holiday definitions per country code.
var nationalHolidays = map[string][]*cal.Holiday{
	"us": {
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	},
	"gb": gb.Holidays,
}

// Calendar computes a country's national holidays for one year.
//
// The rules come from rickar/cal, so nothing is stored: every call
// recomputes the list, which is deterministic for a fixed year.
type Calendar struct {
	holidays []*cal.Holiday
	year     int
	observed bool
	now      func() time.Time
}

// NewCalendar builds a calendar source for country ("us", "gb").
//
// year 0 means "the current year at the time of the call". observed
// switches to the observed date, i.e. the weekday a weekend holiday is
// moved to.
func NewCalendar(country string, year int, observed bool) (*Calendar, error) {
	holidays, ok := nationalHolidays[country]
	if !ok {
		return nil, errors.Errorf("unsupported holiday calendar country %q", country)
	}

	return &Calendar{
		holidays: holidays,
		year:     year,
		observed: observed,
		now:      time.Now,
	}, nil
}

// Year returns the year the next GetAll call computes.
func (c *Calendar) Year() int {
	if c.year > 0 {
		return c.year
	}
	return c.now().Year()
}

// GetAll returns the year's holidays ordered by date, then name.
// Holidays that do not occur in the year (e.g. Juneteenth before 2021)
// are left out.
func (c *Calendar) GetAll(_ context.Context) ([]model.Holiday, error) {
	year := c.Year()
	out := make([]model.Holiday, 0, len(c.holidays))

	for _, h := range c.holidays {
		actual, observed := h.Calc(year)

		at := actual
		if c.observed {
			at = observed
		}
		if at.IsZero() {
			continue
		}

		out = append(out, model.Holiday{Name: h.Name, Date: model.DateOf(at)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].Name < out[j].Name
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}
