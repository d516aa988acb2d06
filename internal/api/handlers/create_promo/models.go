package create_promo

import (
	"time"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// CreatePromoRequest HTTP request model
type CreatePromoRequest struct {
	Code                 string   `json:"code"`
	Type                 string   `json:"type"` // percentage | fixed | free_shipping
	Value                float64  `json:"value"`
	MinOrderAmount       float64  `json:"minOrderAmount"`
	MaxDiscount          *float64 `json:"maxDiscount,omitempty"`
	UsageLimit           *int     `json:"usageLimit,omitempty"`
	UsagePerCustomer     int      `json:"usagePerCustomer,omitempty"`
	ValidFrom            string   `json:"validFrom"`  // RFC3339
	ValidUntil           string   `json:"validUntil"` // RFC3339
	IsActive             bool     `json:"isActive"`
	ApplicableCategories []string `json:"applicableCategories,omitempty"`
	ExcludedProducts     []string `json:"excludedProducts,omitempty"`
}

// PromoResponse HTTP response model
type PromoResponse struct {
	ID                   int64    `json:"id"`
	Code                 string   `json:"code"`
	Type                 string   `json:"type"`
	Value                float64  `json:"value"`
	MinOrderAmount       float64  `json:"minOrderAmount"`
	MaxDiscount          *float64 `json:"maxDiscount,omitempty"`
	UsageLimit           *int     `json:"usageLimit,omitempty"`
	UsageCount           int      `json:"usageCount"`
	UsagePerCustomer     int      `json:"usagePerCustomer"`
	ValidFrom            string   `json:"validFrom"`
	ValidUntil           string   `json:"validUntil"`
	IsActive             bool     `json:"isActive"`
	ApplicableCategories []string `json:"applicableCategories"`
	ExcludedProducts     []string `json:"excludedProducts"`
	CreatedAt            string   `json:"createdAt"`
	UpdatedAt            string   `json:"updatedAt"`
}

// ToDomainPromo конвертирует HTTP запрос в доменную модель
func (r *CreatePromoRequest) ToDomainPromo() (*domain.PromoCode, error) {
	validFrom, err := time.Parse(time.RFC3339, r.ValidFrom)
	if err != nil {
		return nil, err
	}
	validUntil, err := time.Parse(time.RFC3339, r.ValidUntil)
	if err != nil {
		return nil, err
	}

	return &domain.PromoCode{
		Code:                 r.Code,
		Type:                 domain.PromoType(r.Type),
		Value:                r.Value,
		MinOrderAmount:       r.MinOrderAmount,
		MaxDiscount:          r.MaxDiscount,
		UsageLimit:           r.UsageLimit,
		UsagePerCustomer:     r.UsagePerCustomer,
		ValidFrom:            validFrom,
		ValidUntil:           validUntil,
		IsActive:             r.IsActive,
		ApplicableCategories: r.ApplicableCategories,
		ExcludedProducts:     r.ExcludedProducts,
	}, nil
}

// FromDomainPromo конвертирует доменную модель в HTTP response
func FromDomainPromo(p *domain.PromoCode) *PromoResponse {
	categories := p.ApplicableCategories
	if categories == nil {
		categories = []string{}
	}
	excluded := p.ExcludedProducts
	if excluded == nil {
		excluded = []string{}
	}

	return &PromoResponse{
		ID:                   p.ID,
		Code:                 p.Code,
		Type:                 string(p.Type),
		Value:                p.Value,
		MinOrderAmount:       p.MinOrderAmount,
		MaxDiscount:          p.MaxDiscount,
		UsageLimit:           p.UsageLimit,
		UsageCount:           p.UsageCount,
		UsagePerCustomer:     p.UsagePerCustomer,
		ValidFrom:            p.ValidFrom.Format(time.RFC3339),
		ValidUntil:           p.ValidUntil.Format(time.RFC3339),
		IsActive:             p.IsActive,
		ApplicableCategories: categories,
		ExcludedProducts:     excluded,
		CreatedAt:            p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            p.UpdatedAt.Format(time.RFC3339),
	}
}
