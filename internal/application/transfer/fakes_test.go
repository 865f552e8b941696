package transfer

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// memStore estado compartido de los repositorios en memoria usados en los tests.
type memStore struct {
	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
	shops      map[string]*entity.Shop
	stock      map[string]*entity.InventoryRecord // productID|loc
	transfers  map[string]*entity.Transfer
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[string]*entity.Product),
		warehouses: make(map[string]*entity.Warehouse),
		shops:      make(map[string]*entity.Shop),
		stock:      make(map[string]*entity.InventoryRecord),
		transfers:  make(map[string]*entity.Transfer),
	}
}

func stockKey(productID string, loc entity.LocationRef) string {
	return productID + "|" + loc.String()
}

func (s *memStore) seedStock(productID string, loc entity.LocationRef, qty int64) {
	s.stock[stockKey(productID, loc)] = &entity.InventoryRecord{
		ProductID: productID,
		Location:  loc,
		Quantity:  qty,
	}
}

func (s *memStore) quantity(productID string, loc entity.LocationRef) int64 {
	if rec, ok := s.stock[stockKey(productID, loc)]; ok {
		return rec.Quantity
	}
	return 0
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.products {
		p := *v
		c.products[k] = &p
	}
	for k, v := range s.warehouses {
		w := *v
		c.warehouses[k] = &w
	}
	for k, v := range s.shops {
		sh := *v
		c.shops[k] = &sh
	}
	for k, v := range s.stock {
		rec := *v
		c.stock[k] = &rec
	}
	for k, v := range s.transfers {
		c.transfers[k] = cloneTransfer(v)
	}
	return c
}

func (s *memStore) restore(from *memStore) {
	s.products = from.products
	s.warehouses = from.warehouses
	s.shops = from.shops
	s.stock = from.stock
	s.transfers = from.transfers
}

func cloneTransfer(t *entity.Transfer) *entity.Transfer {
	c := *t
	c.Items = append([]entity.TransferItem(nil), t.Items...)
	return &c
}

// memTxRunner simula la transacción: clona el estado antes de ejecutar fn y
// lo restaura si fn falla, reproduciendo la semántica de rollback.
type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	transferRepo repository.TransferRepository,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := r.store.clone()
	err := fn(
		&memTransferRepo{store: r.store},
		&memInventoryRepo{store: r.store},
		&memProductRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(snapshot)
	}
	return err
}

type memInventoryRepo struct {
	store *memStore
}

func (r *memInventoryRepo) Get(productID string, loc entity.LocationRef) (*entity.InventoryRecord, error) {
	if rec, ok := r.store.stock[stockKey(productID, loc)]; ok {
		c := *rec
		return &c, nil
	}
	return &entity.InventoryRecord{ProductID: productID, Location: loc}, nil
}

func (r *memInventoryRepo) GetForUpdate(productID string, loc entity.LocationRef) (*entity.InventoryRecord, error) {
	return r.Get(productID, loc)
}

func (r *memInventoryRepo) Upsert(rec *entity.InventoryRecord) error {
	c := *rec
	r.store.stock[stockKey(rec.ProductID, rec.Location)] = &c
	return nil
}

func (r *memInventoryRepo) TotalQuantity(productID string) (int64, error) {
	var total int64
	for _, rec := range r.store.stock {
		if rec.ProductID == productID {
			total += rec.Quantity
		}
	}
	return total, nil
}

func (r *memInventoryRepo) ListByLocation(loc entity.LocationRef, limit, offset int) ([]*entity.InventoryRecord, error) {
	var out []*entity.InventoryRecord
	for _, rec := range r.store.stock {
		if rec.Location.Equal(loc) {
			c := *rec
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *memInventoryRepo) ListByProduct(productID string) ([]*entity.InventoryRecord, error) {
	var out []*entity.InventoryRecord
	for _, rec := range r.store.stock {
		if rec.ProductID == productID {
			c := *rec
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location.String() < out[j].Location.String() })
	return out, nil
}

type memTransferRepo struct {
	store *memStore
}

func (r *memTransferRepo) Create(t *entity.Transfer) error {
	r.store.transfers[t.ID] = cloneTransfer(t)
	return nil
}

func (r *memTransferRepo) CreateItem(item *entity.TransferItem) error {
	t := r.store.transfers[item.TransferID]
	t.Items = append(t.Items, *item)
	return nil
}

func (r *memTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	t, ok := r.store.transfers[id]
	if !ok {
		return nil, nil
	}
	return cloneTransfer(t), nil
}

func (r *memTransferRepo) Update(t *entity.Transfer) error {
	stored := r.store.transfers[t.ID]
	stored.Source = t.Source
	stored.Destination = t.Destination
	stored.Date = t.Date
	stored.UpdatedAt = t.UpdatedAt
	return nil
}

func (r *memTransferRepo) ReplaceItems(transferID string, items []*entity.TransferItem) error {
	t := r.store.transfers[transferID]
	t.Items = t.Items[:0]
	for _, item := range items {
		t.Items = append(t.Items, *item)
	}
	return nil
}

func (r *memTransferRepo) Delete(id string) error {
	delete(r.store.transfers, id)
	return nil
}

func (r *memTransferRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range r.store.transfers {
		if from != nil && t.Date.Before(*from) {
			continue
		}
		if to != nil && t.Date.After(*to) {
			continue
		}
		out = append(out, cloneTransfer(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type memProductRepo struct {
	store *memStore
}

func (r *memProductRepo) Create(p *entity.Product) error {
	c := *p
	r.store.products[p.ID] = &c
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	c := *p
	r.store.products[p.ID] = &c
	return nil
}

func (r *memProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	if p, ok := r.store.products[productID]; ok {
		p.Cost = cost
	}
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

type memWarehouseRepo struct {
	store *memStore
}

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error {
	c := *w
	r.store.warehouses[w.ID] = &c
	return nil
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.store.warehouses[id]
	if !ok {
		return nil, nil
	}
	c := *w
	return &c, nil
}

func (r *memWarehouseRepo) Update(w *entity.Warehouse) error {
	c := *w
	r.store.warehouses[w.ID] = &c
	return nil
}

func (r *memWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.store.warehouses {
		c := *w
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memWarehouseRepo) Delete(id string) error {
	delete(r.store.warehouses, id)
	return nil
}

type memShopRepo struct {
	store *memStore
}

func (r *memShopRepo) Create(s *entity.Shop) error {
	c := *s
	r.store.shops[s.ID] = &c
	return nil
}

func (r *memShopRepo) GetByID(id string) (*entity.Shop, error) {
	s, ok := r.store.shops[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *memShopRepo) Update(s *entity.Shop) error {
	c := *s
	r.store.shops[s.ID] = &c
	return nil
}

func (r *memShopRepo) List(limit, offset int) ([]*entity.Shop, error) {
	var out []*entity.Shop
	for _, s := range r.store.shops {
		c := *s
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memShopRepo) Delete(id string) error {
	delete(r.store.shops, id)
	return nil
}
