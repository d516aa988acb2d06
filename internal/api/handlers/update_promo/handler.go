package update_promo

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	"github.com/m04kA/PZA-SlotService/internal/service/promos"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат действия, ожидается RFC3339"
	msgPromoNotFound      = "промокод не найден"
)

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

// Handle PUT /api/v1/admin/promos/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req UpdatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/promos/%s - Invalid request body: %v", code, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	promo, err := req.ToDomainPromo(code)
	if err != nil {
		h.logger.Warn("PUT /admin/promos/%s - Invalid dates: %v", code, err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	updated, err := h.service.Update(r.Context(), code, promo)
	if err != nil {
		switch {
		case errors.Is(err, promos.ErrInvalidInput):
			h.logger.Warn("PUT /admin/promos/%s - Invalid promo: %v", code, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, promos.ErrPromoNotFound):
			h.logger.Warn("PUT /admin/promos/%s - Not found", code)
			handlers.RespondNotFound(w, msgPromoNotFound)

		default:
			h.logger.Error("PUT /admin/promos/%s - Failed: %v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainPromo(updated))
}
