package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// InventoryUseCase consultas de existencias (solo lectura). Las mutaciones de
// stock ocurren únicamente vía traslados y recepciones de facturas.
type InventoryUseCase struct {
	invRepo     repository.InventoryRepository
	productRepo repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(invRepo repository.InventoryRepository, productRepo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{invRepo: invRepo, productRepo: productRepo}
}

// StockByLocation devuelve las existencias de una ubicación.
func (uc *InventoryUseCase) StockByLocation(loc entity.LocationRef, limit, offset int) (*dto.StockListResponse, error) {
	if !loc.Valid() {
		return nil, domain.NewValidationError("location", "ubicación inválida")
	}
	records, err := uc.invRepo.ListByLocation(loc, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.StockListResponse{
		Items: toStockRecords(records),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// StockByProduct devuelve las existencias de un producto en todas sus ubicaciones.
func (uc *InventoryUseCase) StockByProduct(productID string) (*dto.StockListResponse, error) {
	p, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	records, err := uc.invRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return &dto.StockListResponse{Items: toStockRecords(records)}, nil
}

// Stock devuelve la existencia puntual de un producto en una ubicación
// (ausencia de fila significa cantidad 0).
func (uc *InventoryUseCase) Stock(productID string, loc entity.LocationRef) (*dto.StockRecordResponse, error) {
	if !loc.Valid() {
		return nil, domain.NewValidationError("location", "ubicación inválida")
	}
	rec, err := uc.invRepo.Get(productID, loc)
	if err != nil {
		return nil, err
	}
	out := toStockRecord(rec)
	return &out, nil
}

func toStockRecords(records []*entity.InventoryRecord) []dto.StockRecordResponse {
	items := make([]dto.StockRecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, toStockRecord(rec))
	}
	return items
}

func toStockRecord(rec *entity.InventoryRecord) dto.StockRecordResponse {
	var kind string
	switch rec.Location.Kind {
	case entity.LocationWarehouse:
		kind = "warehouse"
	case entity.LocationShop:
		kind = "shop"
	}
	return dto.StockRecordResponse{
		ProductID: rec.ProductID,
		Location:  dto.LocationRefResponse{Type: kind, ID: rec.Location.ID},
		Quantity:  rec.Quantity,
		UpdatedAt: rec.UpdatedAt,
	}
}
