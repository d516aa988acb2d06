package promos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/pkg/ptr"
)

func validPromo() *domain.PromoCode {
	return &domain.PromoCode{
		Code:       "PIZZA20",
		Type:       domain.PromoPercentage,
		Value:      20,
		IsActive:   true,
		ValidFrom:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidatePromo(t *testing.T) {
	assert.NoError(t, validatePromo(validPromo()))

	tests := []struct {
		name   string
		mutate func(p *domain.PromoCode)
	}{
		{name: "empty code", mutate: func(p *domain.PromoCode) { p.Code = "  " }},
		{name: "code too long", mutate: func(p *domain.PromoCode) {
			p.Code = "VERY-LONG-PROMO-CODE-THAT-EXCEEDS-THE-LIMIT"
		}},
		{name: "unknown type", mutate: func(p *domain.PromoCode) { p.Type = "cashback" }},
		{name: "zero percentage", mutate: func(p *domain.PromoCode) { p.Value = 0 }},
		{name: "percentage above 100", mutate: func(p *domain.PromoCode) { p.Value = 120 }},
		{name: "negative fixed value", mutate: func(p *domain.PromoCode) {
			p.Type = domain.PromoFixed
			p.Value = -5
		}},
		{name: "negative min order amount", mutate: func(p *domain.PromoCode) { p.MinOrderAmount = -1 }},
		{name: "non-positive max discount", mutate: func(p *domain.PromoCode) { p.MaxDiscount = ptr.Ptr(0.0) }},
		{name: "non-positive usage limit", mutate: func(p *domain.PromoCode) { p.UsageLimit = ptr.Ptr(0) }},
		{name: "missing validity window", mutate: func(p *domain.PromoCode) { p.ValidFrom = time.Time{} }},
		{name: "validUntil before validFrom", mutate: func(p *domain.PromoCode) {
			p.ValidUntil = p.ValidFrom.AddDate(0, 0, -1)
		}},
		// Окно нулевой длины отклоняется так же, как и в схеме БД
		{name: "validUntil equals validFrom", mutate: func(p *domain.PromoCode) {
			p.ValidUntil = p.ValidFrom
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := validPromo()
			tt.mutate(promo)
			assert.ErrorIs(t, validatePromo(promo), ErrInvalidInput)
		})
	}
}

func TestValidatePromo_FreeShippingIgnoresValue(t *testing.T) {
	promo := validPromo()
	promo.Type = domain.PromoFreeShipping
	promo.Value = 0

	assert.NoError(t, validatePromo(promo))
}
