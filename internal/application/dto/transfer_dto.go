package dto

import "time"

// TransferItemRequest línea de un traslado.
type TransferItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CreateTransferRequest body para POST /api/transfers.
// source_type/dest_type son "warehouse" o "shop".
type CreateTransferRequest struct {
	SourceType string                `json:"source_type" validate:"required,oneof=warehouse shop"`
	SourceID   string                `json:"source_id" validate:"required"`
	DestType   string                `json:"dest_type" validate:"required,oneof=warehouse shop"`
	DestID     string                `json:"dest_id" validate:"required"`
	Items      []TransferItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateTransferRequest body para PUT /api/transfers/:id (misma forma que crear;
// el traslado se reescribe completo).
type UpdateTransferRequest = CreateTransferRequest

// LocationRefResponse ubicación serializada en respuestas.
type LocationRefResponse struct {
	Type string `json:"type"` // warehouse | shop
	ID   string `json:"id"`
}

// TransferItemResponse línea del traslado en respuestas.
type TransferItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// TransferResponse salida de un traslado.
type TransferResponse struct {
	ID          string                 `json:"id"`
	Source      LocationRefResponse    `json:"source"`
	Destination LocationRefResponse    `json:"destination"`
	Status      string                 `json:"status"`
	Date        time.Time              `json:"date"`
	Items       []TransferItemResponse `json:"items"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// TransferResult resultado discriminado de crear/editar un traslado.
type TransferResult struct {
	Success  bool              `json:"success"`
	Transfer *TransferResponse `json:"transfer"`
}

// TransferListResponse lista paginada de traslados, más recientes primero.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
