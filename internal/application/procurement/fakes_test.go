package procurement

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// memStore estado compartido de los repositorios en memoria usados en los tests.
type memStore struct {
	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
	suppliers  map[string]*entity.Supplier
	stock      map[string]*entity.InventoryRecord // productID|loc
	invoices   map[string]*entity.Invoice
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[string]*entity.Product),
		warehouses: make(map[string]*entity.Warehouse),
		suppliers:  make(map[string]*entity.Supplier),
		stock:      make(map[string]*entity.InventoryRecord),
		invoices:   make(map[string]*entity.Invoice),
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
	for k, v := range s.suppliers {
		sup := *v
		c.suppliers[k] = &sup
	}
	for k, v := range s.stock {
		rec := *v
		c.stock[k] = &rec
	}
	for k, v := range s.invoices {
		c.invoices[k] = cloneInvoice(v)
	}
	return c
}

func (s *memStore) restore(from *memStore) {
	s.products = from.products
	s.warehouses = from.warehouses
	s.suppliers = from.suppliers
	s.stock = from.stock
	s.invoices = from.invoices
}

func cloneInvoice(inv *entity.Invoice) *entity.Invoice {
	c := *inv
	c.Items = append([]entity.InvoiceItem(nil), inv.Items...)
	return &c
}

// memTxRunner simula la transacción: clona el estado antes de ejecutar fn y
// lo restaura si fn falla, reproduciendo la semántica de rollback.
type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) RunProcurement(_ context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := r.store.clone()
	err := fn(
		&memInvoiceRepo{store: r.store},
		&memInventoryRepo{store: r.store},
		&memProductRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(snapshot)
	}
	return err
}

type memInvoiceRepo struct {
	store *memStore
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error {
	for _, existing := range r.store.invoices {
		if existing.Number == inv.Number {
			return domain.ErrDuplicate
		}
	}
	r.store.invoices[inv.ID] = cloneInvoice(inv)
	return nil
}

func (r *memInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	inv := r.store.invoices[item.InvoiceID]
	inv.Items = append(inv.Items, *item)
	return nil
}

func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.store.invoices[id]
	if !ok {
		return nil, nil
	}
	return cloneInvoice(inv), nil
}

func (r *memInvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	for _, inv := range r.store.invoices {
		if inv.Number == number {
			return cloneInvoice(inv), nil
		}
	}
	return nil, nil
}

func (r *memInvoiceRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.store.invoices {
		if from != nil && inv.Date.Before(*from) {
			continue
		}
		if to != nil && inv.Date.After(*to) {
			continue
		}
		out = append(out, cloneInvoice(inv))
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

type memSupplierRepo struct {
	store *memStore
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error {
	c := *s
	r.store.suppliers[s.ID] = &c
	return nil
}

func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.store.suppliers[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *memSupplierRepo) Update(s *entity.Supplier) error {
	c := *s
	r.store.suppliers[s.ID] = &c
	return nil
}

func (r *memSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.store.suppliers {
		c := *s
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memSupplierRepo) Delete(id string) error {
	delete(r.store.suppliers, id)
	return nil
}
