package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest línea de una factura de compra.
type InvoiceItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// ReceiveInvoiceRequest body para POST /api/invoices: recepción de mercancía
// de un proveedor hacia una bodega.
type ReceiveInvoiceRequest struct {
	Number      string               `json:"number" validate:"required,min=1,max=100"`
	SupplierID  string               `json:"supplier_id" validate:"required"`
	WarehouseID string               `json:"warehouse_id" validate:"required"`
	Date        *time.Time           `json:"date,omitempty"`
	Items       []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

// InvoiceItemResponse línea de factura en respuestas.
type InvoiceItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// InvoiceResponse salida de una factura de compra.
type InvoiceResponse struct {
	ID          string                `json:"id"`
	Number      string                `json:"number"`
	SupplierID  string                `json:"supplier_id"`
	WarehouseID string                `json:"warehouse_id"`
	Date        time.Time             `json:"date"`
	Items       []InvoiceItemResponse `json:"items"`
	CreatedAt   time.Time             `json:"created_at"`
}

// InvoiceResult resultado discriminado de recibir una factura.
type InvoiceResult struct {
	Success bool             `json:"success"`
	Invoice *InvoiceResponse `json:"invoice"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
