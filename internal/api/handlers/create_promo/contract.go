package create_promo

import (
	"context"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

type PromosService interface {
	Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
