package validate_promo

import (
	"context"

	validatePromo "github.com/m04kA/PZA-SlotService/internal/usecase/validate_promo"
)

type ValidatePromoUseCase interface {
	Execute(ctx context.Context, req *validatePromo.Request) (*validatePromo.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
