package slots

import "time"

// DayFailure описывает неудачу генерации слотов на конкретную дату
type DayFailure struct {
	Date   time.Time
	Reason string
}

// GenerationReport итог пакетной генерации слотов.
// Неудача одного дня не прерывает генерацию остальных.
type GenerationReport struct {
	SuccessCount int
	SlotsCreated int
	Failures     []DayFailure
}
