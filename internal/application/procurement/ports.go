package procurement

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta la recepción de una factura dentro de una transacción:
// incrementos de stock, recalculo de costo promedio y persistencia de la
// factura viajan juntos o no viaja nada.
type TxRunner interface {
	RunProcurement(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}
