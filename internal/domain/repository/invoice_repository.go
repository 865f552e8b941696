package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas de compra.
// Las facturas son entradas inmutables del libro: no hay Update ni Delete
// (reversar una recepción corrompería los costos promedio ya recalculados).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetByNumber(number string) (*entity.Invoice, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.Invoice, error)
}
