package domain

import (
	"strings"
	"time"
)

// PromoType represents the discount type of a promo code
type PromoType string

const (
	PromoPercentage   PromoType = "percentage"
	PromoFixed        PromoType = "fixed"
	PromoFreeShipping PromoType = "free_shipping"
)

// IsValidPromoType проверяет, что тип промокода допустим
func IsValidPromoType(t PromoType) bool {
	return t == PromoPercentage || t == PromoFixed || t == PromoFreeShipping
}

// PromoCode represents a discount rule applied at checkout
type PromoCode struct {
	ID    int64
	Code  string // Хранится в верхнем регистре, сравнение регистронезависимое
	Type  PromoType
	Value float64 // Процент для percentage, сумма для fixed, игнорируется для free_shipping

	MinOrderAmount float64
	MaxDiscount    *float64 // Потолок скидки для percentage (nil = без потолка)

	UsageLimit       *int // Общий лимит использований (nil = без лимита)
	UsageCount       int
	UsagePerCustomer int // Лимит на одного покупателя (0 = без лимита)

	ValidFrom  time.Time
	ValidUntil time.Time
	IsActive   bool

	ApplicableCategories []string // Allow-list категорий (пусто = все)
	ExcludedProducts     []string // Deny-list товаров

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeCode приводит код к каноническому виду: trim + верхний регистр
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsWithinWindow returns true if now falls inside the validity window
func (p *PromoCode) IsWithinWindow(now time.Time) bool {
	return !now.Before(p.ValidFrom) && !now.After(p.ValidUntil)
}

// IsExhausted returns true if the total usage limit has been reached
func (p *PromoCode) IsExhausted() bool {
	return p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit
}

// IsEligibleAt returns true if the code is active, within its validity
// window and under its total usage cap
func (p *PromoCode) IsEligibleAt(now time.Time) bool {
	return p.IsActive && p.IsWithinWindow(now) && !p.IsExhausted()
}

// HasCategoryRestrictions returns true if the code applies only to selected categories
func (p *PromoCode) HasCategoryRestrictions() bool {
	return len(p.ApplicableCategories) > 0
}

// CartItem позиция корзины, передаётся внешней системой заказов
type CartItem struct {
	ProductID string
	Category  string
	Price     float64
	Quantity  int
}

// Total возвращает стоимость позиции
func (i CartItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}

// PromoRejectReason причина отказа в применении промокода.
// Возвращается вызывающему как строка для показа пользователю.
type PromoRejectReason string

const (
	PromoNotFound          PromoRejectReason = "NOT_FOUND"
	PromoExpiredOrInactive PromoRejectReason = "EXPIRED_OR_INACTIVE"
	PromoAlreadyUsedMax    PromoRejectReason = "ALREADY_USED_MAX"
	PromoBelowMinimum      PromoRejectReason = "BELOW_MINIMUM"
)

// PromoRedemption факт использования промокода в завершённом заказе
type PromoRedemption struct {
	ID        int64
	Code      string
	Email     string
	OrderRef  string
	Discount  float64
	CreatedAt time.Time
}
