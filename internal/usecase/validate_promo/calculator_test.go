package validate_promo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/pkg/ptr"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.555))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 3.0, Round2(2.999999))
}

func TestCartSubtotal(t *testing.T) {
	items := []domain.CartItem{
		{Price: 10, Quantity: 2},
		{Price: 7.5, Quantity: 1},
	}
	assert.InDelta(t, 27.5, CartSubtotal(items), 0.001)
	assert.Zero(t, CartSubtotal(nil))
}

func TestApplicableSubtotal(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "margherita", Category: "pizza", Price: 10, Quantity: 2},
		{ProductID: "cola", Category: "drinks", Price: 3, Quantity: 2},
		{ProductID: "tiramisu", Category: "desserts", Price: 6, Quantity: 1},
	}

	t.Run("no restrictions covers whole cart", func(t *testing.T) {
		promo := &domain.PromoCode{}
		assert.InDelta(t, 32.0, ApplicableSubtotal(promo, items), 0.001)
	})

	t.Run("category allow-list narrows the base", func(t *testing.T) {
		promo := &domain.PromoCode{ApplicableCategories: []string{"pizza"}}
		assert.InDelta(t, 20.0, ApplicableSubtotal(promo, items), 0.001)
	})

	t.Run("excluded products removed from base", func(t *testing.T) {
		promo := &domain.PromoCode{ExcludedProducts: []string{"cola"}}
		assert.InDelta(t, 26.0, ApplicableSubtotal(promo, items), 0.001)
	})

	t.Run("exclusion applies inside allowed category", func(t *testing.T) {
		promo := &domain.PromoCode{
			ApplicableCategories: []string{"pizza", "drinks"},
			ExcludedProducts:     []string{"margherita"},
		}
		assert.InDelta(t, 6.0, ApplicableSubtotal(promo, items), 0.001)
	})
}

func TestCalculateDiscount(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		promo := &domain.PromoCode{Type: domain.PromoPercentage, Value: 20}

		discount, freeShipping := CalculateDiscount(promo, 30)
		assert.Equal(t, 6.0, discount)
		assert.False(t, freeShipping)
	})

	t.Run("percentage capped by max discount", func(t *testing.T) {
		promo := &domain.PromoCode{
			Type:        domain.PromoPercentage,
			Value:       20,
			MaxDiscount: ptr.Ptr(5.0),
		}

		discount, _ := CalculateDiscount(promo, 30)
		assert.Equal(t, 5.0, discount)
	})

	t.Run("fixed", func(t *testing.T) {
		promo := &domain.PromoCode{Type: domain.PromoFixed, Value: 10}

		discount, _ := CalculateDiscount(promo, 50)
		assert.Equal(t, 10.0, discount)
	})

	t.Run("fixed capped by applicable subtotal", func(t *testing.T) {
		promo := &domain.PromoCode{Type: domain.PromoFixed, Value: 10}

		// Скидка не может превышать применимую базу
		discount, _ := CalculateDiscount(promo, 7)
		assert.Equal(t, 7.0, discount)
	})

	t.Run("free shipping has no monetary discount", func(t *testing.T) {
		promo := &domain.PromoCode{Type: domain.PromoFreeShipping, Value: 999}

		discount, freeShipping := CalculateDiscount(promo, 50)
		assert.Zero(t, discount)
		assert.True(t, freeShipping)
	})

	t.Run("percentage rounding to cents", func(t *testing.T) {
		promo := &domain.PromoCode{Type: domain.PromoPercentage, Value: 15}

		// 15% от 33.33 = 4.9995 -> 5.00
		discount, _ := CalculateDiscount(promo, 33.33)
		assert.Equal(t, 5.0, discount)
	})
}
