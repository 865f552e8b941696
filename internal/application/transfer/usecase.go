package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemInput es una línea del traslado solicitado.
type ItemInput struct {
	ProductID string
	Quantity  int64
}

// Input entrada para crear o editar un traslado. El caller (handler HTTP) ya
// convirtió el request en referencias tipadas; el motor nunca recibe mapas sueltos.
type Input struct {
	Source      entity.LocationRef
	Destination entity.LocationRef
	Items       []ItemInput
}

// UseCase es el motor de traslados: crear, editar y borrar traslados aplicando
// (o reversando) sus efectos sobre inventario en una única transacción por operación.
type UseCase struct {
	txRunner      TxRunner
	transferRepo  repository.TransferRepository // lecturas fuera de transacción (Get/List)
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	shopRepo      repository.ShopRepository
}

// NewUseCase construye el motor.
func NewUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	shopRepo repository.ShopRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		transferRepo:  transferRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		shopRepo:      shopRepo,
	}
}

// Create valida el traslado, descuenta el origen y suma el destino por cada
// línea, y persiste cabecera y líneas, todo en una transacción. Si cualquier
// línea no tiene stock suficiente ninguna mutación queda visible.
func (uc *UseCase) Create(ctx context.Context, in Input) (*entity.Transfer, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	if err := uc.checkRefs(in); err != nil {
		return nil, err
	}

	now := time.Now()
	t := &entity.Transfer{
		ID:          uuid.New().String(),
		Source:      in.Source,
		Destination: in.Destination,
		Status:      entity.TransferStatusCompleted,
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		transferRepo repository.TransferRepository,
		invRepo repository.InventoryRepository,
		_ repository.ProductRepository,
	) error {
		plan := newStockPlan()
		for _, it := range in.Items {
			plan.add(it.ProductID, in.Source, -it.Quantity)
			plan.add(it.ProductID, in.Destination, it.Quantity)
		}
		if err := plan.apply(invRepo, now); err != nil {
			return err
		}
		if err := transferRepo.Create(t); err != nil {
			return err
		}
		for i, it := range in.Items {
			item := &entity.TransferItem{
				ID:         uuid.New().String(),
				TransferID: t.ID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				Position:   i,
			}
			if err := transferRepo.CreateItem(item); err != nil {
				return err
			}
			t.Items = append(t.Items, *item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Update es lógicamente Delete(original) + Create(nuevo) en una sola transacción.
// La reversa del original y los nuevos efectos se fusionan en un único plan, de
// modo que la disponibilidad se valida contra el saldo "después de reversar":
// subir de 6 a 8 unidades sobre el mismo origen funciona mientras 8 no supere
// el stock actual más las 6 que el propio traslado tenía reservadas.
func (uc *UseCase) Update(ctx context.Context, transferID string, in Input) (*entity.Transfer, error) {
	if transferID == "" {
		return nil, domain.NewValidationError("transfer_id", "es requerido")
	}
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	if err := uc.checkRefs(in); err != nil {
		return nil, err
	}

	now := time.Now()
	var updated *entity.Transfer

	err := uc.txRunner.Run(ctx, func(
		transferRepo repository.TransferRepository,
		invRepo repository.InventoryRepository,
		_ repository.ProductRepository,
	) error {
		orig, err := transferRepo.GetByID(transferID)
		if err != nil {
			return err
		}
		if orig == nil {
			return domain.ErrNotFound
		}

		plan := newStockPlan()
		// Reversa del original: devolver al origen, retirar del destino.
		for _, it := range orig.Items {
			plan.add(it.ProductID, orig.Source, it.Quantity)
			plan.add(it.ProductID, orig.Destination, -it.Quantity)
		}
		// Efectos de la nueva versión.
		for _, it := range in.Items {
			plan.add(it.ProductID, in.Source, -it.Quantity)
			plan.add(it.ProductID, in.Destination, it.Quantity)
		}
		if err := plan.apply(invRepo, now); err != nil {
			return err
		}

		orig.Source = in.Source
		orig.Destination = in.Destination
		orig.Date = now
		orig.UpdatedAt = now
		if err := transferRepo.Update(orig); err != nil {
			return err
		}

		items := make([]*entity.TransferItem, len(in.Items))
		for i, it := range in.Items {
			items[i] = &entity.TransferItem{
				ID:         uuid.New().String(),
				TransferID: orig.ID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				Position:   i,
			}
		}
		if err := transferRepo.ReplaceItems(orig.ID, items); err != nil {
			return err
		}

		orig.Items = orig.Items[:0]
		for _, item := range items {
			orig.Items = append(orig.Items, *item)
		}
		updated = orig
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete reversa los efectos del traslado (devuelve al origen, retira del
// destino) y borra líneas y cabecera en una transacción. El retiro del destino
// puede fallar con stock insuficiente si ese stock ya se consumió (por ejemplo
// se vendió); ese error se reporta al caller, nunca se recorta a cero.
func (uc *UseCase) Delete(ctx context.Context, transferID string) error {
	if transferID == "" {
		return domain.NewValidationError("transfer_id", "es requerido")
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		transferRepo repository.TransferRepository,
		invRepo repository.InventoryRepository,
		_ repository.ProductRepository,
	) error {
		t, err := transferRepo.GetByID(transferID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		plan := newStockPlan()
		for _, it := range t.Items {
			plan.add(it.ProductID, t.Source, it.Quantity)
			plan.add(it.ProductID, t.Destination, -it.Quantity)
		}
		if err := plan.apply(invRepo, now); err != nil {
			return err
		}
		return transferRepo.Delete(t.ID)
	})
}

// Get devuelve un traslado con sus líneas.
func (uc *UseCase) Get(transferID string) (*entity.Transfer, error) {
	t, err := uc.transferRepo.GetByID(transferID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// List devuelve traslados en un rango de fechas, más recientes primero.
func (uc *UseCase) List(from, to *time.Time, limit, offset int) ([]*entity.Transfer, error) {
	return uc.transferRepo.List(from, to, limit, offset)
}

// validate revisa la forma del request: ubicaciones válidas y distintas,
// líneas presentes, producto y cantidad por línea. Acumula todos los errores
// de campo antes de rechazar; no toca persistencia.
func (uc *UseCase) validate(in Input) error {
	var fields []domain.FieldError
	if !in.Source.Valid() {
		fields = append(fields, domain.FieldError{Field: "source", Message: "ubicación de origen inválida"})
	}
	if !in.Destination.Valid() {
		fields = append(fields, domain.FieldError{Field: "destination", Message: "ubicación de destino inválida"})
	}
	if in.Source.Valid() && in.Destination.Valid() && in.Source.Equal(in.Destination) {
		fields = append(fields, domain.FieldError{Field: "destination", Message: "el destino no puede ser igual al origen"})
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
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// checkRefs verifica que productos y ubicaciones referenciadas existan.
// Lecturas fuera de la transacción, como hace el resto de la aplicación.
func (uc *UseCase) checkRefs(in Input) error {
	seen := make(map[string]bool, len(in.Items))
	for _, it := range in.Items {
		if seen[it.ProductID] {
			continue
		}
		seen[it.ProductID] = true
		p, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
	}
	for _, loc := range []entity.LocationRef{in.Source, in.Destination} {
		ok, err := uc.locationExists(loc)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (uc *UseCase) locationExists(loc entity.LocationRef) (bool, error) {
	switch loc.Kind {
	case entity.LocationWarehouse:
		w, err := uc.warehouseRepo.GetByID(loc.ID)
		return w != nil, err
	case entity.LocationShop:
		s, err := uc.shopRepo.GetByID(loc.ID)
		return s != nil, err
	}
	return false, nil
}
