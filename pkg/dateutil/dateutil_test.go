package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDayUTC(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)

	// 01:30 MSK — это ещё 31 августа по UTC
	local := time.Date(2026, 9, 1, 1, 30, 0, 0, msk)
	got := StartOfDayUTC(local)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestNextDayUTC(t *testing.T) {
	day := time.Date(2026, 9, 1, 15, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), NextDayUTC(day))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("01.09.2026")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-09-01", FormatDate(time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestIsPastDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsPastDay(time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC), now))
	// Сегодняшний день не считается прошедшим
	assert.False(t, IsPastDay(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsPastDay(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), now))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, -7, DaysBetween(b, a))
}
