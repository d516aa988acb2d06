package list_promos

import (
	"context"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

type PromosService interface {
	List(ctx context.Context, limit, offset uint64) ([]*domain.PromoCode, error)
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
