package validate_promo

import (
	"math"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// Round2 округляет сумму до 2 знаков (центов) математическим округлением
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CartSubtotal возвращает полную стоимость корзины
func CartSubtotal(items []domain.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Total()
	}
	return sum
}

// ApplicableSubtotal возвращает часть стоимости корзины, на которую
// распространяется промокод: allow-list категорий сужает базу,
// deny-list товаров исключается всегда.
func ApplicableSubtotal(promo *domain.PromoCode, items []domain.CartItem) float64 {
	excluded := make(map[string]struct{}, len(promo.ExcludedProducts))
	for _, id := range promo.ExcludedProducts {
		excluded[id] = struct{}{}
	}

	allowed := make(map[string]struct{}, len(promo.ApplicableCategories))
	for _, c := range promo.ApplicableCategories {
		allowed[c] = struct{}{}
	}

	var sum float64
	for _, it := range items {
		if _, ok := excluded[it.ProductID]; ok {
			continue
		}
		if promo.HasCategoryRestrictions() {
			if _, ok := allowed[it.Category]; !ok {
				continue
			}
		}
		sum += it.Total()
	}
	return sum
}

// CalculateDiscount вычисляет сумму скидки промокода для применимой базы.
// Скидка никогда не превышает применимую базу; для free_shipping денежная
// скидка равна нулю, а бесплатная доставка сигнализируется флагом.
func CalculateDiscount(promo *domain.PromoCode, applicable float64) (discount float64, freeShipping bool) {
	switch promo.Type {
	case domain.PromoPercentage:
		discount = applicable * promo.Value / 100
		if promo.MaxDiscount != nil && discount > *promo.MaxDiscount {
			discount = *promo.MaxDiscount
		}
	case domain.PromoFixed:
		discount = promo.Value
		if discount > applicable {
			discount = applicable
		}
	case domain.PromoFreeShipping:
		return 0, true
	}

	if discount < 0 {
		discount = 0
	}
	return Round2(discount), false
}
