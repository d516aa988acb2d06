package list_promos

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/internal/service/promos"
)

const msgPromoNotFound = "промокод не найден"

// PromoListResponse HTTP response model
type PromoListResponse struct {
	Promos []PromoResponse `json:"promos"`
}

// PromoResponse HTTP модель промокода в списке
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
}

type Handler struct {
	service PromosService
	logger  Logger
}

func NewHandler(service PromosService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/promos?limit=50&offset=0
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := parseUintParam(r.URL.Query().Get("limit"), 50)
	offset := parseUintParam(r.URL.Query().Get("offset"), 0)

	promoList, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("GET /admin/promos - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := PromoListResponse{Promos: make([]PromoResponse, len(promoList))}
	for i, p := range promoList {
		resp.Promos[i] = fromDomainPromo(p)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleGet GET /api/v1/admin/promos/{code}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	promo, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, promos.ErrPromoNotFound) {
			handlers.RespondNotFound(w, msgPromoNotFound)
			return
		}
		h.logger.Error("GET /admin/promos/%s - Failed: %v", code, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainPromo(promo))
}

func fromDomainPromo(p *domain.PromoCode) PromoResponse {
	categories := p.ApplicableCategories
	if categories == nil {
		categories = []string{}
	}
	excluded := p.ExcludedProducts
	if excluded == nil {
		excluded = []string{}
	}

	return PromoResponse{
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
	}
}

func parseUintParam(raw string, def uint64) uint64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return def
	}
	return v
}
