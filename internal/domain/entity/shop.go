package entity

import "time"

// Shop representa una tienda (punto de venta) que también mantiene inventario.
type Shop struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
