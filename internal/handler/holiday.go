package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tessdev/holiday-service/internal/errs"
	"github.com/tessdev/holiday-service/internal/model"
	"github.com/tessdev/holiday-service/internal/server"
	"github.com/tessdev/holiday-service/internal/service"
)

// HolidayHandler serves the holiday list.
type HolidayHandler struct {
	Handler
	provider service.HolidayProvider
}

func NewHolidayHandler(s *server.Server, provider service.HolidayProvider) *HolidayHandler {
	return &HolidayHandler{
		Handler:  NewHandler(s),
		provider: provider,
	}
}

// ListHolidaysRequest has no fields: the endpoint takes no parameters and
// ignores any query string.
type ListHolidaysRequest struct{}

func (r *ListHolidaysRequest) Validate() error {
	return nil
}

// ListHolidays returns every holiday the provider knows, in provider
// order. An empty provider yields []; an unavailable one yields 503.
func (h *HolidayHandler) ListHolidays(c echo.Context, _ *ListHolidaysRequest) ([]model.Holiday, error) {
	holidays, err := h.provider.GetAll(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrHolidaysUnavailable) {
			return nil, errs.NewHolidaysUnavailableError()
		}
		return nil, err
	}

	if holidays == nil {
		holidays = []model.Holiday{}
	}
	return holidays, nil
}
