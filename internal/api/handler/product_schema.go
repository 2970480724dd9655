package handler

// --- Product request types ---

type productRequest struct {
	ProductName        string `json:"product_name"         validate:"required,min=2"`
	ProductCode        string `json:"product_code"         validate:"required"`
	ProductCategory    string `json:"product_category"     validate:"required"`
	Unit               string `json:"unit"                 validate:"required"`
	CriticalStockLevel int64  `json:"critical_stock_level" validate:"gte=0"`
	CurrentStock       int64  `json:"current_stock"        validate:"gte=0"`
	Brand              string `json:"brand"`
}

type bulkProductRequest struct {
	Items []productRequest `json:"items" validate:"required,min=1,dive"`
}
