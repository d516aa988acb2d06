package redeem_promo

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/internal/service/promos"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPromoNotFound      = "промокод не найден"
	msgUsageLimitReached  = "лимит использований промокода исчерпан"
)

// RedeemPromoRequest HTTP request model
type RedeemPromoRequest struct {
	Email    string  `json:"email"`
	OrderRef string  `json:"orderRef"`
	Discount float64 `json:"discount"`
}

// RedeemPromoResponse HTTP response model
type RedeemPromoResponse struct {
	ID        int64   `json:"id"`
	Code      string  `json:"code"`
	Email     string  `json:"email"`
	OrderRef  string  `json:"orderRef"`
	Discount  float64 `json:"discount"`
	CreatedAt string  `json:"createdAt"`
}

type Handler struct {
	service PromosService
	logger  Logger
}

func NewHandler(service PromosService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/promos/{code}/redeem
// Вызывается системой заказов при финализации заказа с применённым промокодом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req RedeemPromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/promos/%s/redeem - Invalid request body: %v", code, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Redeem(r.Context(), &domain.PromoRedemption{
		Code:     code,
		Email:    req.Email,
		OrderRef: req.OrderRef,
		Discount: req.Discount,
	})
	if err != nil {
		switch {
		case errors.Is(err, promos.ErrInvalidInput):
			h.logger.Warn("POST /admin/promos/%s/redeem - Invalid request: %v", code, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, promos.ErrPromoNotFound):
			h.logger.Warn("POST /admin/promos/%s/redeem - Not found", code)
			handlers.RespondNotFound(w, msgPromoNotFound)

		case errors.Is(err, promos.ErrUsageLimitReached):
			h.logger.Warn("POST /admin/promos/%s/redeem - Usage limit reached", code)
			handlers.RespondError(w, http.StatusConflict, msgUsageLimitReached)

		default:
			h.logger.Error("POST /admin/promos/%s/redeem - Failed: %v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, RedeemPromoResponse{
		ID:        created.ID,
		Code:      created.Code,
		Email:     created.Email,
		OrderRef:  created.OrderRef,
		Discount:  created.Discount,
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	})
}
