package update_promo

import (
	"context"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

type PromosService interface {
	Update(ctx context.Context, code string, promo *domain.PromoCode) (*domain.PromoCode, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
