package generate_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays        = "некорректное количество дней"
	msgRegenerateSingle   = "regenerate применим только к одной дате"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		h.logger.Warn("POST /admin/slots/generate - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	days := req.Days
	if days == 0 {
		days = 1
	}

	if req.Regenerate {
		if days != 1 {
			handlers.RespondBadRequest(w, msgRegenerateSingle)
			return
		}
		h.handleRegenerate(w, r, startDate)
		return
	}

	report, err := h.service.GenerateRange(r.Context(), startDate, days)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots/generate - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
		default:
			h.logger.Error("POST /admin/slots/generate - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromGenerationReport(report))
}

// handleRegenerate пересоздаёт слоты одной даты (после смены расписания)
func (h *Handler) handleRegenerate(w http.ResponseWriter, r *http.Request, date time.Time) {
	created, err := h.service.RegenerateDate(r.Context(), date)
	if err != nil {
		h.logger.Error("POST /admin/slots/generate - Regenerate failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &GenerateSlotsResponse{
		SuccessCount: 1,
		SlotsCreated: created,
		Failures:     []DayFailureResponse{},
	})
}
