package dto

import "time"

// StockRecordResponse existencias de un producto en una ubicación.
type StockRecordResponse struct {
	ProductID string              `json:"product_id"`
	Location  LocationRefResponse `json:"location"`
	Quantity  int64               `json:"quantity"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// StockListResponse existencias por ubicación o por producto.
type StockListResponse struct {
	Items []StockRecordResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
