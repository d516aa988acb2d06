package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultCapacityPerSlot     = 8 // пицц на слот при стандартной загрузке печи
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 240
	MinCapacityPerSlot     = 1
	MaxCapacityPerSlot     = 100

	MinPizzasPerOrder = 1
	MaxPizzasPerOrder = 20

	MaxGenerateDays = 60 // максимальный размер пакетной генерации слотов

	MaxPercentageValue = 100
	MaxPromoCodeLength = 32
	MaxEmailLength     = 254
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
