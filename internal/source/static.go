package source

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/tessdev/holiday-service/internal/model"
)

// Static serves a fixed, in-memory list of holidays in the given order.
type Static struct {
	holidays []model.Holiday
}

// NewStatic wraps holidays. The slice is copied.
func NewStatic(holidays []model.Holiday) *Static {
	return &Static{holidays: cloneHolidays(holidays)}
}

// ParseStatic builds a Static source from "name=YYYY-MM-DD" entries, the
// form used by the HOLIDAY_HOLIDAYS__STATIC variable. The last "=" splits
// name from date so names may contain "=".
func ParseStatic(entries []string) (*Static, error) {
	holidays := make([]model.Holiday, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		idx := strings.LastIndex(entry, "=")
		if idx < 0 {
			return nil, errors.Errorf("static holiday %q: expected name=YYYY-MM-DD", entry)
		}

		date, err := model.ParseDate(strings.TrimSpace(entry[idx+1:]))
		if err != nil {
			return nil, errors.Wrapf(err, "static holiday %q", entry)
		}

		h := model.Holiday{Name: strings.TrimSpace(entry[:idx]), Date: date}
		if err := h.Validate(); err != nil {
			return nil, errors.Wrapf(err, "static holiday %q", entry)
		}
		holidays = append(holidays, h)
	}

	return &Static{holidays: holidays}, nil
}

func (s *Static) GetAll(_ context.Context) ([]model.Holiday, error) {
	return cloneHolidays(s.holidays), nil
}
