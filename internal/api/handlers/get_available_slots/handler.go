package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	"github.com/m04kA/PZA-SlotService/internal/domain"
	getSlots "github.com/m04kA/PZA-SlotService/internal/usecase/get_available_slots"
	"github.com/m04kA/PZA-SlotService/pkg/dateutil"
)

const (
	msgMissingDate      = "требуется параметр date или пара startDate/endDate"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "некорректный диапазон дат"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
// Handle GET /api/v1/slots?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD&onlyAvailable=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDate, endDate, err := parseDateRange(query.Get("date"), query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date params: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		StartDate:     startDate,
		EndDate:       endDate,
		OnlyAvailable: query.Get("onlyAvailable") == "true",
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidInput), errors.Is(err, getSlots.ErrInvalidDateRange):
			h.logger.Warn("GET /slots - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)
		default:
			h.logger.Error("GET /slots - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseDateRange разбирает параметры даты: либо одиночный date,
// либо пара startDate/endDate (endDate не включается в диапазон)
func parseDateRange(date, start, end string) (time.Time, time.Time, error) {
	if date != "" {
		day, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New(msgInvalidDate)
		}
		startDay := dateutil.StartOfDayUTC(day)
		return startDay, dateutil.NextDayUTC(startDay), nil
	}

	if start == "" || end == "" {
		return time.Time{}, time.Time{}, errors.New(msgMissingDate)
	}

	startDay, err := time.Parse(domain.DateFormat, start)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New(msgInvalidDate)
	}
	endDay, err := time.Parse(domain.DateFormat, end)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New(msgInvalidDate)
	}

	return dateutil.StartOfDayUTC(startDay), dateutil.StartOfDayUTC(endDay), nil
}
