package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-07-04")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.July, 4), d)
	assert.Equal(t, "2024-07-04", d.String())

	_, err = ParseDate("07/04/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestParseDateLayout(t *testing.T) {
	d, err := ParseDateLayout("20241225", "20060102")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-25", d.String())
}

func TestDateOf_DropsClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	at := time.Date(2024, time.January, 1, 23, 59, 0, 0, loc)

	d := DateOf(at)
	assert.Equal(t, "2024-01-01", d.String())
	assert.True(t, d.Equal(NewDate(2024, time.January, 1)))
	assert.Equal(t, time.UTC, d.Time().Location())
	assert.True(t, DateOf(time.Time{}).IsZero())
}

func TestDate_Before(t *testing.T) {
	a := NewDate(2024, time.January, 1)
	b := NewDate(2024, time.July, 4)
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestHoliday_JSON(t *testing.T) {
	holidays := []Holiday{
		{Name: "New Year's Day", Date: NewDate(2024, time.January, 1)},
		{Name: "Independence Day", Date: NewDate(2024, time.July, 4)},
	}

	data, err := json.Marshal(holidays)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"name":"New Year's Day","date":"2024-01-01"},{"name":"Independence Day","date":"2024-07-04"}]`,
		string(data))

	var decoded []Holiday
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, holidays, decoded)
}

func TestHoliday_JSONRejectsBadDate(t *testing.T) {
	var h Holiday
	err := json.Unmarshal([]byte(`{"name":"Bad","date":"2024-13-01"}`), &h)
	assert.Error(t, err)
}

func TestHoliday_Validate(t *testing.T) {
	ok := Holiday{Name: "Labour Day", Date: NewDate(2024, time.May, 1)}
	assert.NoError(t, ok.Validate())

	noName := Holiday{Name: "  ", Date: NewDate(2024, time.May, 1)}
	assert.True(t, errors.Is(noName.Validate(), ErrInvalidHoliday))

	noDate := Holiday{Name: "Labour Day"}
	assert.True(t, errors.Is(noDate.Validate(), ErrInvalidHoliday))

	err := ValidateAll([]Holiday{ok, noDate})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holiday #1")
}
