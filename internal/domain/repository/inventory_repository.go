package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// InventoryRepository define el puerto para consultar/actualizar existencias
// por (producto, ubicación). Las mutaciones siempre corren dentro de la
// transacción del caller; el repositorio no mantiene estado entre llamadas.
type InventoryRepository interface {
	// Get devuelve el registro de existencias; si no existe, devuelve un registro
	// con cantidad 0 (ausencia significa cero, no error).
	Get(productID string, loc entity.LocationRef) (*entity.InventoryRecord, error)
	// GetForUpdate hace lo mismo bloqueando la fila (SELECT FOR UPDATE) para
	// serializar mutaciones concurrentes sobre el mismo par producto/ubicación.
	GetForUpdate(productID string, loc entity.LocationRef) (*entity.InventoryRecord, error)
	Upsert(rec *entity.InventoryRecord) error
	// TotalQuantity suma las existencias del producto en todas las ubicaciones
	// (base del costo promedio ponderado en recepciones).
	TotalQuantity(productID string) (int64, error)
	ListByLocation(loc entity.LocationRef, limit, offset int) ([]*entity.InventoryRecord, error)
	ListByProduct(productID string) ([]*entity.InventoryRecord, error)
}
