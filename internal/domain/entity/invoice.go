package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura de compra: recepción de mercancía de un
// proveedor hacia una bodega. Aplicarla incrementa stock en la bodega destino
// y recalcula el costo promedio ponderado de cada producto recibido.
// Es una entrada inmutable del libro de compras: no se edita ni se borra.
type Invoice struct {
	ID          string
	Number      string // consecutivo de negocio, único
	SupplierID  string
	WarehouseID string // bodega destino de toda la factura
	Date        time.Time
	Items       []InvoiceItem
	CreatedAt   time.Time
}

// InvoiceItem es una línea de la factura: producto, cantidad y costo unitario de compra.
type InvoiceItem struct {
	ID        string
	InvoiceID string
	ProductID string
	Quantity  int64
	UnitCost  decimal.Decimal
	Position  int
}
