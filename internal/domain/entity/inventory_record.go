package entity

import "time"

// InventoryRecord representa la existencia de un producto en una ubicación.
// Clave: (ProductID, Location). Quantity nunca es negativa; el registro se crea
// perezosamente con la primera entrada y no se borra aunque la cantidad llegue a 0
// ("conocido pero vacío").
type InventoryRecord struct {
	ProductID string
	Location  LocationRef
	Quantity  int64
	UpdatedAt time.Time
}
