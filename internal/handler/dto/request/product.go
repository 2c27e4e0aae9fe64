package request

// CreateProductRequest binds the multipart form fields; the image part is
// pulled off the form separately by the handler.
type CreateProductRequest struct {
	Name           string `form:"name" binding:"required,max=255"`
	BatchSize      int    `form:"batch_size" binding:"required,min=1,max=100000"`
	UnitPriceCents int64  `form:"unit_price_cents" binding:"min=0"`
}
