package release_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	releaseSlot "github.com/m04kA/PZA-SlotService/internal/usecase/release_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgSlotNotFound       = "слот не найден"
	msgOrderNotFound      = "заказ не привязан к слоту"
)

type Handler struct {
	useCase ReleaseSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots/{slotId}/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req ReleaseSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/%d/release - Invalid request body: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &releaseSlot.Request{
		SlotID:   slotID,
		OrderRef: req.OrderRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, releaseSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/%d/release - Invalid request: %v", slotID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, releaseSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/%d/release - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, releaseSlot.ErrOrderNotFound):
			h.logger.Warn("POST /slots/%d/release - Order not found: orderRef=%s", slotID, req.OrderRef)
			handlers.RespondNotFound(w, msgOrderNotFound)

		default:
			h.logger.Error("POST /slots/%d/release - Failed to release: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
