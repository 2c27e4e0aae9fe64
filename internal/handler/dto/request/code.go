package request

type GenerateCodesRequest struct {
	ProductID   string `json:"product_id" binding:"required,uuid"`
	BatchNumber string `json:"batch_number" binding:"required,max=64"`
}
