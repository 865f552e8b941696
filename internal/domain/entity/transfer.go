package entity

import "time"

// Estados de un traslado. Hoy solo existe el estado terminal: el traslado se
// aplica y persiste en una misma transacción, no hay estados en tránsito.
const (
	TransferStatusCompleted = "COMPLETED"
)

// Transfer representa un movimiento de stock de una ubicación a otra.
// Invariante: Source y Destination nunca son iguales (mismo tipo y mismo ID).
// Sus efectos sobre inventario se aplican al crearlo, se reversan al borrarlo
// y se reversan-y-reaplican al editarlo, siempre de forma atómica.
type Transfer struct {
	ID          string
	Source      LocationRef
	Destination LocationRef
	Status      string
	Date        time.Time
	Items       []TransferItem // orden de captura
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransferItem es una línea del traslado: producto y cantidad (siempre > 0).
// Pertenece exclusivamente a su Transfer; se destruye con él.
type TransferItem struct {
	ID         string
	TransferID string
	ProductID  string
	Quantity   int64
	Position   int // posición en la lista, preserva el orden de captura
}
