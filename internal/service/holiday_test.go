package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessdev/holiday-service/internal/config"
	"github.com/tessdev/holiday-service/internal/model"
	"github.com/tessdev/holiday-service/internal/repository"
	"github.com/tessdev/holiday-service/internal/source"
	"github.com/tessdev/holiday-service/internal/sqlerr"
)

type stubSource struct {
	holidays []model.Holiday
	err      error
	calls    int
}

func (s *stubSource) GetAll(context.Context) ([]model.Holiday, error) {
	s.calls++
	return s.holidays, s.err
}

func TestHolidayService_ReturnsSourceOrder(t *testing.T) {
	want := []model.Holiday{
		{Name: "New Year's Day", Date: model.NewDate(2024, time.January, 1)},
		{Name: "Independence Day", Date: model.NewDate(2024, time.July, 4)},
	}
	src := &stubSource{holidays: want}
	svc := NewHolidayService(src, "static", zerolog.Nop())

	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, src.calls)

	got[0].Name = "changed"
	assert.Equal(t, "New Year's Day", src.holidays[0].Name)
}

func TestHolidayService_NilBecomesEmpty(t *testing.T) {
	svc := NewHolidayService(&stubSource{}, "static", zerolog.Nop())

	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHolidayService_WrapsFailures(t *testing.T) {
	var buf bytes.Buffer
	cause := sqlerr.Classify(context.DeadlineExceeded)
	src := &stubSource{err: cause}
	svc := NewHolidayService(src, "postgres", zerolog.New(&buf))

	got, err := svc.GetAll(context.Background())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrHolidaysUnavailable))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 1, src.calls, "no retries")

	assert.Contains(t, buf.String(), "holiday source failed")
	assert.Contains(t, buf.String(), `"db_error_code":"`+string(sqlerr.QueryCanceled)+`"`)
	assert.Contains(t, buf.String(), `"source":"postgres"`)
}

func TestNewSource(t *testing.T) {
	cfg := config.DefaultHolidaysConfig()

	p, err := NewSource(&cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &source.Calendar{}, p)

	cfg.Source = config.SourceStatic
	cfg.Static = []string{"New Year's Day=2024-01-01"}
	p, err = NewSource(&cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &source.Static{}, p)

	cfg.Source = config.SourceFile
	cfg.File.Path = "holidays.yaml"
	p, err = NewSource(&cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &source.File{}, p)

	cfg.Source = config.SourceRemote
	cfg.Remote.URL = "http://localhost:9/holidays"
	p, err = NewSource(&cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &source.Remote{}, p)
}

func TestNewSource_DatabaseNeedsRepository(t *testing.T) {
	cfg := config.DefaultHolidaysConfig()

	for _, name := range []string{config.SourcePostgres, config.SourceSQLite} {
		cfg.Source = name
		_, err := NewSource(&cfg, &repository.Repositories{})
		assert.Error(t, err, name)
	}

	cfg.Source = config.SourcePostgres
	repos := &repository.Repositories{Holidays: repository.NewHolidayRepository(nil, zerolog.Nop(), 0)}
	p, err := NewSource(&cfg, repos)
	require.NoError(t, err)
	assert.Same(t, repos.Holidays, p)
}

func TestNewSource_Invalid(t *testing.T) {
	cfg := config.DefaultHolidaysConfig()

	cfg.Source = config.SourceStatic
	cfg.Static = []string{"garbage"}
	_, err := NewSource(&cfg, nil)
	assert.Error(t, err)

	cfg.Source = "carrier-pigeon"
	_, err = NewSource(&cfg, nil)
	assert.Error(t, err)
}
