package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ItemInput es una línea de la factura de compra.
type ItemInput struct {
	ProductID string
	Quantity  int64
	UnitCost  decimal.Decimal
}

// Input entrada para recibir una factura de compra en una bodega.
type Input struct {
	Number      string
	SupplierID  string
	WarehouseID string
	Date        time.Time // cero = ahora
	Items       []ItemInput
}

// UseCase recibe facturas de compra: por cada línea suma stock en la bodega
// destino y recalcula el costo promedio ponderado del producto, y persiste
// cabecera y líneas, todo en una transacción.
//
// Las facturas son inmutables: no existe reversa de una recepción porque
// deshacerla exigiría recalcular en cadena los costos promedio de todo lo
// que se movió o vendió después.
type UseCase struct {
	txRunner      TxRunner
	invoiceRepo   repository.InvoiceRepository // lecturas fuera de transacción
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		invoiceRepo:   invoiceRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
	}
}

// ReceiveInvoice valida y aplica la recepción.
func (uc *UseCase) ReceiveInvoice(ctx context.Context, in Input) (*entity.Invoice, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	products := make(map[string]*entity.Product, len(in.Items))
	for _, it := range in.Items {
		if _, ok := products[it.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		products[it.ProductID] = p
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	inv := &entity.Invoice{
		ID:          uuid.New().String(),
		Number:      in.Number,
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Date:        date,
		CreatedAt:   now,
	}
	dest := entity.WarehouseRef(in.WarehouseID)

	err = uc.txRunner.RunProcurement(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, it := range in.Items {
			// Bloquear la fila destino antes de leer el total para serializar
			// recepciones concurrentes del mismo producto.
			rec, err := invRepo.GetForUpdate(it.ProductID, dest)
			if err != nil {
				return err
			}
			total, err := invRepo.TotalQuantity(it.ProductID)
			if err != nil {
				return err
			}
			product := products[it.ProductID]
			newCost := inventory.WeightedAverageCost(total, product.Cost, it.Quantity, it.UnitCost)
			if err := productRepo.UpdateCost(it.ProductID, newCost); err != nil {
				return err
			}
			// El siguiente ítem de la misma factura con el mismo producto debe
			// promediar sobre el costo ya actualizado.
			product.Cost = newCost

			rec.Quantity += it.Quantity
			rec.UpdatedAt = now
			if err := invRepo.Upsert(rec); err != nil {
				return err
			}
		}

		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for i, it := range in.Items {
			item := &entity.InvoiceItem{
				ID:        uuid.New().String(),
				InvoiceID: inv.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitCost:  it.UnitCost,
				Position:  i,
			}
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
			inv.Items = append(inv.Items, *item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Get devuelve una factura con sus líneas.
func (uc *UseCase) Get(invoiceID string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// List devuelve facturas en un rango de fechas, más recientes primero.
func (uc *UseCase) List(from, to *time.Time, limit, offset int) ([]*entity.Invoice, error) {
	return uc.invoiceRepo.List(from, to, limit, offset)
}

func (uc *UseCase) validate(in Input) error {
	var fields []domain.FieldError
	if in.Number == "" {
		fields = append(fields, domain.FieldError{Field: "number", Message: "es requerido"})
	}
	if in.SupplierID == "" {
		fields = append(fields, domain.FieldError{Field: "supplier_id", Message: "es requerido"})
	}
	if in.WarehouseID == "" {
		fields = append(fields, domain.FieldError{Field: "warehouse_id", Message: "es requerido"})
	}
	if len(in.Items) == 0 {
		fields = append(fields, domain.FieldError{Field: "items", Message: "se requiere al menos una línea"})
	}
	for i, it := range in.Items {
		if it.ProductID == "" {
			fields = append(fields, domain.FieldError{Field: fmt.Sprintf("items[%d].product_id", i), Message: "es requerido"})
		}
		if it.Quantity < 1 {
			fields = append(fields, domain.FieldError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "debe ser mayor o igual a 1"})
		}
		if it.UnitCost.LessThan(decimal.Zero) {
			fields = append(fields, domain.FieldError{Field: fmt.Sprintf("items[%d].unit_cost", i), Message: "no puede ser negativo"})
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
