package redeem_promo

import (
	"context"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

type PromosService interface {
	Redeem(ctx context.Context, red *domain.PromoRedemption) (*domain.PromoRedemption, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
