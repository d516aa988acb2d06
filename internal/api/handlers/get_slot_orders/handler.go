package get_slot_orders

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/internal/service/slots"
)

const (
	msgInvalidSlotID = "некорректный идентификатор слота"
	msgSlotNotFound  = "слот не найден"
)

// SlotOrdersResponse HTTP response model
type SlotOrdersResponse struct {
	SlotID int64           `json:"slotId"`
	Orders []OrderResponse `json:"orders"`
}

// OrderResponse HTTP модель заказа, привязанного к слоту
type OrderResponse struct {
	OrderRef     string `json:"orderRef"`
	PizzaCount   int    `json:"pizzaCount"`
	DeliveryType string `json:"deliveryType"`
	Email        string `json:"email"`
	CreatedAt    string `json:"createdAt"`
}

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

// Handle GET /api/v1/admin/slots/{slotId}/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	// Сначала проверяем существование слота, чтобы отличить пустой слот от несуществующего
	if _, err := h.service.GetByID(r.Context(), slotID); err != nil {
		if errors.Is(err, slots.ErrSlotNotFound) {
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("GET /admin/slots/%d/orders - Failed to get slot: %v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	refs, err := h.service.GetOrderRefs(r.Context(), slotID)
	if err != nil {
		h.logger.Error("GET /admin/slots/%d/orders - Failed to get orders: %v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainRefs(slotID, refs))
}

func fromDomainRefs(slotID int64, refs []*domain.OrderRef) *SlotOrdersResponse {
	orders := make([]OrderResponse, len(refs))
	for i, ref := range refs {
		orders[i] = OrderResponse{
			OrderRef:     ref.OrderRef,
			PizzaCount:   ref.PizzaCount,
			DeliveryType: string(ref.DeliveryType),
			Email:        ref.Email,
			CreatedAt:    ref.CreatedAt.Format(time.RFC3339),
		}
	}

	return &SlotOrdersResponse{
		SlotID: slotID,
		Orders: orders,
	}
}
