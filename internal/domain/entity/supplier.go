package entity

import "time"

// Supplier representa un proveedor de mercancía (origen de las facturas de compra).
type Supplier struct {
	ID        string
	Name      string
	TaxID     string // NIT o identificación fiscal
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
