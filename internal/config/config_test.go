package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PZA-SlotService/pkg/types"
)

func testScheduleConfig() ScheduleConfig {
	openDay := DayConfig{Open: "10:00", Close: "22:00"}
	return ScheduleConfig{
		SlotDurationMinutes: 30,
		CapacityPerSlot:     8,
		Monday:              DayConfig{Closed: true},
		Tuesday:             openDay,
		Wednesday:           openDay,
		Thursday:            openDay,
		Friday:              openDay,
		Saturday:            openDay,
		Sunday:              openDay,
	}
}

func TestScheduleConfig_ToDomainSchedule(t *testing.T) {
	t.Run("valid schedule converts", func(t *testing.T) {
		cfg := testScheduleConfig()

		schedule, err := cfg.ToDomainSchedule()
		require.NoError(t, err)

		assert.Equal(t, 30, schedule.SlotDurationMinutes)
		assert.Equal(t, 8, schedule.CapacityPerSlot)
		assert.False(t, schedule.Week.Monday.IsOpen)
		assert.True(t, schedule.Week.Tuesday.IsOpen)
		assert.Equal(t, types.TimeString("10:00"), schedule.Week.Tuesday.OpenTime)
	})

	t.Run("non-padded open time is rejected", func(t *testing.T) {
		// "9:00" лексикографически больше "22:00": молчаливый пропуск такой
		// формы оставил бы день без единого слота
		cfg := testScheduleConfig()
		cfg.Tuesday = DayConfig{Open: "9:00", Close: "22:00"}

		_, err := cfg.ToDomainSchedule()
		assert.ErrorIs(t, err, types.ErrInvalidTimeString)
	})

	t.Run("open time after close time is rejected", func(t *testing.T) {
		cfg := testScheduleConfig()
		cfg.Friday = DayConfig{Open: "22:00", Close: "10:00"}

		_, err := cfg.ToDomainSchedule()
		assert.Error(t, err)
	})

	t.Run("exception with invalid date is rejected", func(t *testing.T) {
		cfg := testScheduleConfig()
		cfg.Exceptions = []ExceptionConfig{{Date: "25.12.2026", Closed: true}}

		_, err := cfg.ToDomainSchedule()
		assert.Error(t, err)
	})

	t.Run("exception with non-padded time is rejected", func(t *testing.T) {
		cfg := testScheduleConfig()
		cfg.Exceptions = []ExceptionConfig{{Date: "2026-12-31", Open: "9:00", Close: "18:00"}}

		_, err := cfg.ToDomainSchedule()
		assert.ErrorIs(t, err, types.ErrInvalidTimeString)
	})
}
