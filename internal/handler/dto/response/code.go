package response

import (
	"time"

	"veritag/internal/usecase/commands"
	"veritag/internal/usecase/queries"
)

type GenerateCodesResponse struct {
	ProductID   string   `json:"product_id"`
	BatchNumber string   `json:"batch_number"`
	Count       int      `json:"count"`
	Codes       []string `json:"codes"`
	IssuedAt    int64    `json:"issued_at"`
}

func FromIssueBatchResult(r *commands.IssueBatchResult) *GenerateCodesResponse {
	return &GenerateCodesResponse{
		ProductID:   r.ProductID.String(),
		BatchNumber: r.BatchNumber,
		Count:       r.Count,
		Codes:       r.Values,
		IssuedAt:    r.IssuedAt.Unix(),
	}
}

type CodeLookupResponse struct {
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	ImageURL       string `json:"image_url"`
	BatchNumber    string `json:"batch_number"`
	Value          string `json:"value"`
	State          string `json:"state"`
	IssuedAt       int64  `json:"issued_at"`
	UsedAt         *int64 `json:"used_at,omitempty"`
}

func FromCodeView(v *queries.CodeView) *CodeLookupResponse {
	return &CodeLookupResponse{
		ProductID:      v.ProductID.String(),
		ProductName:    v.ProductName,
		UnitPriceCents: v.UnitPriceCents,
		ImageURL:       v.ImageURL,
		BatchNumber:    v.BatchNumber,
		Value:          v.Value,
		State:          v.State,
		IssuedAt:       v.IssuedAt.Unix(),
		UsedAt:         unixPtr(v.UsedAt),
	}
}

type RedeemResponse struct {
	Value       string `json:"value"`
	ProductID   string `json:"product_id"`
	BatchNumber string `json:"batch_number"`
	State       string `json:"state"`
	UsedAt      *int64 `json:"used_at,omitempty"`
}

func FromCodeSnapshot(s *commands.CodeSnapshot) *RedeemResponse {
	return &RedeemResponse{
		Value:       s.Value,
		ProductID:   s.ProductID.String(),
		BatchNumber: s.BatchNumber,
		State:       s.State,
		UsedAt:      unixPtr(s.UsedAt),
	}
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.Unix()
	return &v
}
