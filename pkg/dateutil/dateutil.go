// Package dateutil нормализует календарные даты к границам суток в UTC.
// Все компоненты сервиса работают с датами только через эти функции,
// чтобы исключить дрейф таймзон при сравнении и хранении дат слотов.
package dateutil

import "time"

// DateFormat формат календарной даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// StartOfDayUTC возвращает начало суток (00:00:00) для даты в UTC
func StartOfDayUTC(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDayUTC возвращает начало следующих суток в UTC
func NextDayUTC(t time.Time) time.Time {
	return StartOfDayUTC(t).AddDate(0, 0, 1)
}

// ParseDate парсит строку YYYY-MM-DD в начало суток UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDayUTC(t), nil
}

// FormatDate форматирует дату как YYYY-MM-DD (по UTC)
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// SameDay возвращает true, если обе даты относятся к одним и тем же суткам UTC
func SameDay(a, b time.Time) bool {
	return StartOfDayUTC(a).Equal(StartOfDayUTC(b))
}

// IsPastDay возвращает true, если date раньше суток, в которых находится now
func IsPastDay(date, now time.Time) bool {
	return StartOfDayUTC(date).Before(StartOfDayUTC(now))
}

// DaysBetween возвращает количество полных суток между началом a и началом b
func DaysBetween(a, b time.Time) int {
	return int(StartOfDayUTC(b).Sub(StartOfDayUTC(a)).Hours() / 24)
}
