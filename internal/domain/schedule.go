package domain

import (
	"time"

	"github.com/m04kA/PZA-SlotService/pkg/dateutil"
	"github.com/m04kA/PZA-SlotService/pkg/types"
)

// DaySchedule расписание работы пиццерии на один день
type DaySchedule struct {
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// WeekSchedule расписание работы по дням недели
type WeekSchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday возвращает расписание на указанный день недели
func (w *WeekSchedule) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// Schedule операционная конфигурация пиццерии: недельное расписание,
// исключения на конкретные даты (праздники, особые дни) и параметры слотов.
// Read-only вход для генератора слотов, задаётся конфигурацией сервиса.
type Schedule struct {
	Week       WeekSchedule
	Exceptions map[string]DaySchedule // ключ — дата YYYY-MM-DD

	SlotDurationMinutes int
	CapacityPerSlot     int
}

// ForDate возвращает расписание на дату: исключение, если оно задано,
// иначе расписание соответствующего дня недели
func (s *Schedule) ForDate(date time.Time) DaySchedule {
	if day, ok := s.Exceptions[dateutil.FormatDate(date)]; ok {
		return day
	}
	return s.Week.ForWeekday(date.UTC().Weekday())
}
