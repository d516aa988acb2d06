package create_promo

import (
	"errors"
	"net/http"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	"github.com/m04kA/PZA-SlotService/internal/service/promos"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат действия, ожидается RFC3339"
	msgDuplicateCode      = "промокод с таким кодом уже существует"
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

// Handle POST /api/v1/admin/promos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/promos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	promo, err := req.ToDomainPromo()
	if err != nil {
		h.logger.Warn("POST /admin/promos - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	created, err := h.service.Create(r.Context(), promo)
	if err != nil {
		switch {
		case errors.Is(err, promos.ErrInvalidInput):
			h.logger.Warn("POST /admin/promos - Invalid promo: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, promos.ErrDuplicateCode):
			h.logger.Warn("POST /admin/promos - Duplicate code: %s", req.Code)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateCode)

		default:
			h.logger.Error("POST /admin/promos - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomainPromo(created))
}
