package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// Cost es el costo promedio ponderado; solo lo recalcula la recepción de facturas
// de compra, nunca el motor de traslados. El stock vive por ubicación en InventoryRecord.
type Product struct {
	ID          string
	SKU         string // código único de negocio
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo promedio ponderado (inicia en 0)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
