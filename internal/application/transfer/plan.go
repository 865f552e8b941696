package transfer

import (
	"sort"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// stockDelta es un cambio neto de existencias sobre un par (producto, ubicación).
type stockDelta struct {
	productID string
	location  entity.LocationRef
	quantity  int64 // con signo: negativo descuenta, positivo suma
}

// stockPlan acumula los deltas de una operación del motor antes de tocar la BD.
// Deltas sobre el mismo par (producto, ubicación) se fusionan, de modo que la
// reversa de un traslado y su nueva versión se validan contra el saldo neto:
// editar un traslado nunca ve "insuficiencia fantasma" causada por su propia
// reserva original.
type stockPlan struct {
	deltas map[string]*stockDelta
}

func newStockPlan() *stockPlan {
	return &stockPlan{deltas: make(map[string]*stockDelta)}
}

// add acumula un delta para (producto, ubicación).
func (p *stockPlan) add(productID string, loc entity.LocationRef, qty int64) {
	key := productID + "|" + loc.String()
	if d, ok := p.deltas[key]; ok {
		d.quantity += qty
		return
	}
	p.deltas[key] = &stockDelta{productID: productID, location: loc, quantity: qty}
}

// apply ejecuta el plan contra el repositorio de inventario dentro de la
// transacción actual: bloquea cada fila (SELECT FOR UPDATE), verifica que el
// saldo resultante no sea negativo y hace upsert. Las filas se bloquean en
// orden determinista de clave para que dos transacciones concurrentes no se
// interbloqueen entre sí.
func (p *stockPlan) apply(invRepo repository.InventoryRepository, now time.Time) error {
	keys := make([]string, 0, len(p.deltas))
	for k, d := range p.deltas {
		if d.quantity == 0 {
			continue // delta neto nulo: no hay nada que aplicar
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		d := p.deltas[k]
		rec, err := invRepo.GetForUpdate(d.productID, d.location)
		if err != nil {
			return err
		}
		newQty := rec.Quantity + d.quantity
		if newQty < 0 {
			return &domain.StockError{
				ProductID: d.productID,
				Location:  d.location.String(),
				Requested: -d.quantity,
				Available: rec.Quantity,
			}
		}
		rec.Quantity = newQty
		rec.UpdatedAt = now
		if err := invRepo.Upsert(rec); err != nil {
			return err
		}
	}
	return nil
}
