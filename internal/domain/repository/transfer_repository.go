package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para el libro de traslados.
// Cabecera y líneas se escriben por separado para correr dentro de la misma
// transacción que las mutaciones de inventario.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	CreateItem(item *entity.TransferItem) error
	// GetByID devuelve el traslado con sus líneas ordenadas; nil si no existe.
	GetByID(id string) (*entity.Transfer, error)
	// Update reescribe la cabecera (origen, destino, fecha).
	Update(transfer *entity.Transfer) error
	// ReplaceItems borra todas las líneas del traslado e inserta el nuevo conjunto.
	ReplaceItems(transferID string, items []*entity.TransferItem) error
	// Delete borra líneas y luego cabecera.
	Delete(id string) error
	// List devuelve traslados del rango de fechas, más recientes primero.
	List(from, to *time.Time, limit, offset int) ([]*entity.Transfer, error)
}
