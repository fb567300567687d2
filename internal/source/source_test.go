package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessdev/holiday-service/internal/config"
	"github.com/tessdev/holiday-service/internal/model"
)

var specHolidays = []model.Holiday{
	{Name: "New Year's Day", Date: model.NewDate(2024, time.January, 1)},
	{Name: "Independence Day", Date: model.NewDate(2024, time.July, 4)},
}

func TestStatic_PreservesOrderAndCopies(t *testing.T) {
	src := NewStatic(specHolidays)

	got, err := src.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, specHolidays, got)

	got[0].Name = "mutated"
	again, err := src.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New Year's Day", again[0].Name)
}

func TestParseStatic(t *testing.T) {
	src, err := ParseStatic([]string{"New Year's Day=2024-01-01", " Independence Day = 2024-07-04 ", ""})
	require.NoError(t, err)

	got, err := src.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, specHolidays, got)

	empty, err := ParseStatic(nil)
	require.NoError(t, err)
	got, err = empty.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseStatic_Invalid(t *testing.T) {
	for _, entry := range []string{"no separator", "Bad=2024-02-30x", "=2024-01-01"} {
		_, err := ParseStatic([]string{entry})
		assert.Error(t, err, entry)
	}
}

func TestCalendar_US2024(t *testing.T) {
	src, err := NewCalendar("us", 2024, false)
	require.NoError(t, err)

	got, err := src.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 11)

	assert.Equal(t, model.Holiday{Name: "New Year's Day", Date: model.NewDate(2024, time.January, 1)}, got[0])
	assert.Equal(t, "2024-12-25", got[len(got)-1].Date.String())
	assert.Contains(t, got, model.Holiday{Name: "Independence Day", Date: model.NewDate(2024, time.July, 4)})

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Date.Before(got[i-1].Date), "holidays must be in date order")
	}
}

func TestCalendar_Observed(t *testing.T) {
	// July 4th 2021 was a Sunday, observed on Monday the 5th.
	actual, err := NewCalendar("us", 2021, false)
	require.NoError(t, err)
	observed, err := NewCalendar("us", 2021, true)
	require.NoError(t, err)

	find := func(list []model.Holiday, name string) model.Holiday {
		for _, h := range list {
			if h.Name == name {
				return h
			}
		}
		t.Fatalf("%s not found", name)
		return model.Holiday{}
	}

	a, err := actual.GetAll(context.Background())
	require.NoError(t, err)
	o, err := observed.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2021-07-04", find(a, "Independence Day").Date.String())
	assert.Equal(t, "2021-07-05", find(o, "Independence Day").Date.String())
}

func TestCalendar_CurrentYear(t *testing.T) {
	src, err := NewCalendar("us", 0, false)
	require.NoError(t, err)
	src.now = func() time.Time { return time.Date(2030, time.March, 3, 12, 0, 0, 0, time.UTC) }

	assert.Equal(t, 2030, src.Year())

	got, err := src.GetAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "2030-01-01", got[0].Date.String())
}

func TestCalendar_GB(t *testing.T) {
	src, err := NewCalendar("gb", 2024, false)
	require.NoError(t, err)

	got, err := src.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestCalendar_UnknownCountry(t *testing.T) {
	_, err := NewCalendar("xx", 2024, false)
	assert.Error(t, err)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFile_Formats(t *testing.T) {
	cases := map[string]string{
		"holidays.json": `[
			{"name": "New Year's Day", "date": "2024-01-01"},
			{"name": "Independence Day", "date": "2024-07-04"}
		]`,
		"holidays.toml": `
[[holidays]]
name = "New Year's Day"
date = "2024-01-01"

[[holidays]]
name = "Independence Day"
date = "2024-07-04"
`,
		"holidays.yaml": `
holidays:
  - name: New Year's Day
    date: "2024-01-01"
  - name: Independence Day
    date: "2024-07-04"
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			src, err := NewFile(writeFile(t, name, content), "")
			require.NoError(t, err)

			got, err := src.GetAll(context.Background())
			require.NoError(t, err)
			assert.Equal(t, specHolidays, got)
		})
	}
}

func TestFile_EmptyList(t *testing.T) {
	src, err := NewFile(writeFile(t, "holidays.json", `[]`), "")
	require.NoError(t, err)

	got, err := src.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFile_Failures(t *testing.T) {
	missing, err := NewFile(filepath.Join(t.TempDir(), "missing.json"), "")
	require.NoError(t, err)
	_, err = missing.GetAll(context.Background())
	assert.Error(t, err)

	broken, err := NewFile(writeFile(t, "broken.json", `{not json`), "")
	require.NoError(t, err)
	_, err = broken.GetAll(context.Background())
	assert.Error(t, err)

	invalid, err := NewFile(writeFile(t, "invalid.json", `[{"name": "", "date": "2024-01-01"}]`), "")
	require.NoError(t, err)
	_, err = invalid.GetAll(context.Background())
	assert.Error(t, err)

	_, err = NewFile("holidays.csv", "")
	assert.Error(t, err)
}

func TestFile_ExplicitFormat(t *testing.T) {
	src, err := NewFile(writeFile(t, "holidays.txt", `[{"name": "Boxing Day", "date": "2024-12-26"}]`), FormatJSON)
	require.NoError(t, err)

	got, err := src.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Boxing Day", got[0].Name)
}

func remoteConfig(url string) config.RemoteSourceConfig {
	cfg := config.DefaultHolidaysConfig().Remote
	cfg.URL = url
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestRemote_TopLevelArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"New Year's Day","date":"2024-01-01"},{"name":"Independence Day","date":"2024-07-04"}]`))
	}))
	defer srv.Close()

	got, err := NewRemote(remoteConfig(srv.URL)).GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, specHolidays, got)
}

func TestRemote_NestedPathAndCompactDates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":[{"longName":"Christmas Holidays","startDate":20241223}]}`))
	}))
	defer srv.Close()

	cfg := remoteConfig(srv.URL)
	cfg.ItemsPath = "result"
	cfg.NameField = "longName"
	cfg.DateField = "startDate"
	cfg.DateLayout = "20060102"

	got, err := NewRemote(cfg).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Christmas Holidays", got[0].Name)
	assert.Equal(t, "2024-12-23", got[0].Date.String())
}

func TestRemote_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
		"not json": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html></html>`))
		},
		"not an array": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name":"x"}`))
		},
		"bad date": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"name":"x","date":"04/07/2024"}]`))
		},
		"missing name": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"date":"2024-07-04"}]`))
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			_, err := NewRemote(remoteConfig(srv.URL)).GetAll(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestRemote_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewRemote(remoteConfig(url)).GetAll(context.Background())
	assert.Error(t, err)
}
