package response

import (
	"veritag/internal/usecase/commands"
	"veritag/internal/usecase/queries"
)

type ProductResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BatchSize      int    `json:"batch_size"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	ImageURL       string `json:"image_url"`
	CreatedAt      int64  `json:"created_at"`
}

func FromProductSnapshot(s *commands.ProductSnapshot, imageURL string) *ProductResponse {
	return &ProductResponse{
		ID:             s.ID.String(),
		Name:           s.Name,
		BatchSize:      s.BatchSize,
		UnitPriceCents: s.UnitPriceCents,
		ImageURL:       imageURL,
		CreatedAt:      s.CreatedAt.Unix(),
	}
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:             v.ID.String(),
		Name:           v.Name,
		BatchSize:      v.BatchSize,
		UnitPriceCents: v.UnitPriceCents,
		ImageURL:       v.ImageURL,
		CreatedAt:      v.CreatedAt.Unix(),
	}
}

func FromProductList(views []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = FromProductView(v)
	}
	return res
}
