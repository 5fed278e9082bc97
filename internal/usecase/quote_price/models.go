package quote_price

import (
	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// Источник роста собаки, использованного в расчёте
const (
	HeightSourceRequest  = "request"
	HeightSourceRegistry = "registry"
	HeightSourceUnknown  = "unknown"
)

// Request модель запроса на расчёт цены
// Рост берётся из HeightCm, иначе из реестра по DogID, иначе считается неизвестным
type Request struct {
	OrgID     int64      // ID пансионата (0 = политика по умолчанию)
	DogID     *int64     // ID собаки в реестре (опционально)
	HeightCm  *float64   // Рост в холке (опционально)
	Tier      string     // budget, standard, premium
	StartDate types.Date // Дата заезда
	EndDate   types.Date // Дата выезда
}

// NightResponse цена одной ночи
type NightResponse struct {
	Date       types.Date `json:"date"`
	Category   string     `json:"category"`
	Multiplier float64    `json:"multiplier"`
}

// VATResponse разложение суммы по НДС (moms)
type VATResponse struct {
	RatePct  float64 `json:"ratePct"`
	Net      float64 `json:"net"`
	VAT      float64 `json:"vat"`
	Gross    float64 `json:"gross"`
	Included bool    `json:"included"`
}

// Response модель ответа с расчётом цены
type Response struct {
	OrgID          int64           `json:"orgId"`
	Tier           string          `json:"tier"`
	SizeBand       string          `json:"sizeBand"`
	HeightCm       *float64        `json:"heightCm,omitempty"`
	HeightSource   string          `json:"heightSource"`
	StartDate      types.Date      `json:"startDate"`
	EndDate        types.Date      `json:"endDate"`
	BasePrice      float64         `json:"basePrice"`
	SizeMultiplier float64         `json:"sizeMultiplier"`
	DateMultiplier float64         `json:"dateMultiplier"`
	TotalPerNight  float64         `json:"totalPerNight"`
	Nights         int             `json:"nights"`
	TotalCost      float64         `json:"totalCost"`
	Nightly        []NightResponse `json:"nightly"`
	VAT            VATResponse     `json:"vat"`
	PolicyDefault  bool            `json:"policyDefault"`
}

func toResponse(req *Request, heightCm *float64, heightSource string, b *domain.PriceBreakdown, policy *domain.OrgPolicy) *Response {
	resp := &Response{
		OrgID:          req.OrgID,
		Tier:           string(b.Tier),
		SizeBand:       string(b.SizeBand),
		HeightCm:       heightCm,
		HeightSource:   heightSource,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		BasePrice:      b.BasePrice,
		SizeMultiplier: b.SizeMultiplier,
		DateMultiplier: b.DateMultiplier,
		TotalPerNight:  b.TotalPerNight,
		Nights:         b.Nights,
		TotalCost:      b.TotalCost,
		Nightly:        make([]NightResponse, 0, len(b.Nightly)),
		PolicyDefault:  policy.IsDefault,
	}

	for _, n := range b.Nightly {
		resp.Nightly = append(resp.Nightly, NightResponse{
			Date:       n.Date,
			Category:   string(n.Category),
			Multiplier: n.Multiplier,
		})
	}

	split := policy.Pricing.SplitVAT(b.TotalCost)
	resp.VAT = VATResponse{
		RatePct:  split.RatePct,
		Net:      split.Net,
		VAT:      split.VAT,
		Gross:    split.Gross,
		Included: split.Included,
	}

	return resp
}
