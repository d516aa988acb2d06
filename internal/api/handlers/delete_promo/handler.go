package delete_promo

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	"github.com/m04kA/PZA-SlotService/internal/service/promos"
)

const msgPromoNotFound = "промокод не найден"

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

// Handle DELETE /api/v1/admin/promos/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if err := h.service.Delete(r.Context(), code); err != nil {
		if errors.Is(err, promos.ErrPromoNotFound) {
			h.logger.Warn("DELETE /admin/promos/%s - Not found", code)
			handlers.RespondNotFound(w, msgPromoNotFound)
			return
		}
		h.logger.Error("DELETE /admin/promos/%s - Failed: %v", code, err)
		handlers.RespondInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
