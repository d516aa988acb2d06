package generate_slots

import (
	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/internal/service/slots"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	StartDate  string `json:"startDate"`            // "2026-09-01"
	Days       int    `json:"days,omitempty"`       // По умолчанию 1
	Regenerate bool   `json:"regenerate,omitempty"` // Пересоздать слоты одной даты
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	SuccessCount int                  `json:"successCount"`
	SlotsCreated int                  `json:"slotsCreated"`
	Failures     []DayFailureResponse `json:"failures"`
}

// DayFailureResponse HTTP модель неудачи генерации одного дня
type DayFailureResponse struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// FromGenerationReport конвертирует отчёт сервиса в HTTP response
func FromGenerationReport(report *slots.GenerationReport) *GenerateSlotsResponse {
	failures := make([]DayFailureResponse, len(report.Failures))
	for i, f := range report.Failures {
		failures[i] = DayFailureResponse{
			Date:   f.Date.Format(domain.DateFormat),
			Reason: f.Reason,
		}
	}

	return &GenerateSlotsResponse{
		SuccessCount: report.SuccessCount,
		SlotsCreated: report.SlotsCreated,
		Failures:     failures,
	}
}
