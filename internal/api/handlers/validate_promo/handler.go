package validate_promo

import (
	"errors"
	"net/http"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	validatePromo "github.com/m04kA/PZA-SlotService/internal/usecase/validate_promo"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	useCase ValidatePromoUseCase
	logger  Logger
}

func NewHandler(useCase ValidatePromoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/promo/validate
// Неприменимый промокод — это 200 с valid=false и причиной:
// фронтенд показывает её пользователю рядом с полем ввода кода.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promo/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, validatePromo.ErrInvalidInput):
			h.logger.Warn("POST /promo/validate - Invalid request: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /promo/validate - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
