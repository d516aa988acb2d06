package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PZA-SlotService/pkg/ptr"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "PIZZA10", NormalizeCode("  pizza10 "))
	assert.Equal(t, "SUMMER-20", NormalizeCode("Summer-20"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestPromoCode_IsWithinWindow(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC)
	promo := PromoCode{ValidFrom: from, ValidUntil: until}

	assert.True(t, promo.IsWithinWindow(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)))
	// Границы окна включительны
	assert.True(t, promo.IsWithinWindow(from))
	assert.True(t, promo.IsWithinWindow(until))
	assert.False(t, promo.IsWithinWindow(from.Add(-time.Second)))
	assert.False(t, promo.IsWithinWindow(until.Add(time.Second)))
}

func TestPromoCode_IsExhausted(t *testing.T) {
	unlimited := PromoCode{UsageCount: 1000}
	assert.False(t, unlimited.IsExhausted())

	limited := PromoCode{UsageLimit: ptr.Ptr(10), UsageCount: 9}
	assert.False(t, limited.IsExhausted())

	limited.UsageCount = 10
	assert.True(t, limited.IsExhausted())
}

func TestPromoCode_IsEligibleAt(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	base := PromoCode{
		IsActive:   true,
		ValidFrom:  now.AddDate(0, 0, -7),
		ValidUntil: now.AddDate(0, 0, 7),
	}

	assert.True(t, base.IsEligibleAt(now))

	inactive := base
	inactive.IsActive = false
	assert.False(t, inactive.IsEligibleAt(now))

	expired := base
	expired.ValidUntil = now.AddDate(0, 0, -1)
	assert.False(t, expired.IsEligibleAt(now))

	exhausted := base
	exhausted.UsageLimit = ptr.Ptr(5)
	exhausted.UsageCount = 5
	assert.False(t, exhausted.IsEligibleAt(now))
}

func TestCartItem_Total(t *testing.T) {
	item := CartItem{Price: 12.5, Quantity: 3}
	assert.InDelta(t, 37.5, item.Total(), 0.001)
}
