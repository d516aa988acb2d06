package reserve_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	reserveSlot "github.com/m04kA/PZA-SlotService/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgSlotNotFound       = "слот не найден"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/reserve
// Бизнес-отказ возвращается со статусом 409 и структурированной причиной,
// чтобы фронтенд мог показать пользователю, что именно пошло не так.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req ReserveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/%d/reserve - Invalid request body: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reserveSlot.Request{
		SlotID:       slotID,
		PizzaCount:   req.PizzaCount,
		DeliveryType: req.DeliveryType,
		Email:        req.Email,
		OrderRef:     req.OrderRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/%d/reserve - Invalid request: %v", slotID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, reserveSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/%d/reserve - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("POST /slots/%d/reserve - Failed to reserve: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if !result.Accepted {
		status = http.StatusConflict
	}

	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
