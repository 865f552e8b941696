package procurement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase() (*UseCase, *memStore) {
	store := newMemStore()
	store.products["p1"] = &entity.Product{ID: "p1", SKU: "CAFE-500", Name: "Café 500g", Cost: decimal.Zero}
	store.products["p2"] = &entity.Product{ID: "p2", SKU: "AZUCAR-1K", Name: "Azúcar 1kg", Cost: decimal.Zero}
	store.warehouses["w1"] = &entity.Warehouse{ID: "w1", Name: "Bodega Central"}
	store.suppliers["sup1"] = &entity.Supplier{ID: "sup1", Name: "Distribuidora Andina"}

	uc := NewUseCase(
		&memTxRunner{store: store},
		&memInvoiceRepo{store: store},
		&memSupplierRepo{store: store},
		&memWarehouseRepo{store: store},
		&memProductRepo{store: store},
	)
	return uc, store
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestReceiveInvoice_ProductoSinStockPrevio(t *testing.T) {
	uc, store := newTestUseCase()
	w1 := entity.WarehouseRef("w1")

	inv, err := uc.ReceiveInvoice(context.Background(), Input{
		Number:      "FC-001",
		SupplierID:  "sup1",
		WarehouseID: "w1",
		Items:       []ItemInput{{ProductID: "p1", Quantity: 10, UnitCost: d("100")}},
	})
	require.NoError(t, err)
	require.NotNil(t, inv)

	assert.Equal(t, int64(10), store.quantity("p1", w1))
	// Sin stock previo el costo promedio es el costo de la entrada.
	assert.True(t, store.products["p1"].Cost.Equal(d("100")),
		"cost = %s", store.products["p1"].Cost)

	stored := store.invoices[inv.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "FC-001", stored.Number)
	require.Len(t, stored.Items, 1)
}

func TestReceiveInvoice_PromedioPonderadoSobreTodasLasUbicaciones(t *testing.T) {
	uc, store := newTestUseCase()
	w1 := entity.WarehouseRef("w1")
	s1 := entity.ShopRef("s1")

	// 10 unidades a costo 100, repartidas entre bodega y tienda: el promedio
	// pondera el total del producto, no solo lo que hay en la bodega receptora.
	store.products["p1"].Cost = d("100")
	store.seedStock("p1", w1, 4)
	store.seedStock("p1", s1, 6)

	_, err := uc.ReceiveInvoice(context.Background(), Input{
		Number:      "FC-002",
		SupplierID:  "sup1",
		WarehouseID: "w1",
		Items:       []ItemInput{{ProductID: "p1", Quantity: 10, UnitCost: d("200")}},
	})
	require.NoError(t, err)

	// (10*100 + 10*200) / 20 = 150
	assert.True(t, store.products["p1"].Cost.Equal(d("150")),
		"cost = %s", store.products["p1"].Cost)
	assert.Equal(t, int64(14), store.quantity("p1", w1))
	assert.Equal(t, int64(6), store.quantity("p1", s1))
}

func TestReceiveInvoice_DosLineasDelMismoProductoPromedianEnCadena(t *testing.T) {
	uc, store := newTestUseCase()
	w1 := entity.WarehouseRef("w1")

	_, err := uc.ReceiveInvoice(context.Background(), Input{
		Number:      "FC-003",
		SupplierID:  "sup1",
		WarehouseID: "w1",
		Items: []ItemInput{
			{ProductID: "p1", Quantity: 10, UnitCost: d("100")},
			{ProductID: "p1", Quantity: 10, UnitCost: d("200")},
		},
	})
	require.NoError(t, err)

	// Primera línea deja costo 100 y stock 10; la segunda promedia sobre eso:
	// (10*100 + 10*200) / 20 = 150.
	assert.True(t, store.products["p1"].Cost.Equal(d("150")),
		"cost = %s", store.products["p1"].Cost)
	assert.Equal(t, int64(20), store.quantity("p1", w1))
}

func TestReceiveInvoice_NumeroDuplicadoNoDejaRastro(t *testing.T) {
	uc, store := newTestUseCase()
	w1 := entity.WarehouseRef("w1")

	_, err := uc.ReceiveInvoice(context.Background(), Input{
		Number:      "FC-004",
		SupplierID:  "sup1",
		WarehouseID: "w1",
		Items:       []ItemInput{{ProductID: "p1", Quantity: 5, UnitCost: d("100")}},
	})
	require.NoError(t, err)

	_, err = uc.ReceiveInvoice(context.Background(), Input{
		Number:      "FC-004",
		SupplierID:  "sup1",
		WarehouseID: "w1",
		Items:       []ItemInput{{ProductID: "p1", Quantity: 5, UnitCost: d("300")}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	// El rollback descarta el stock y el costo de la segunda recepción.
	assert.Equal(t, int64(5), store.quantity("p1", w1))
	assert.True(t, store.products["p1"].Cost.Equal(d("100")),
		"cost = %s", store.products["p1"].Cost)
	assert.Len(t, store.invoices, 1)
}

func TestReceiveInvoice_ValidacionDeCampos(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.ReceiveInvoice(context.Background(), Input{
		Items: []ItemInput{{ProductID: "", Quantity: 0, UnitCost: d("-1")}},
	})
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	fields := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "number")
	assert.Contains(t, fields, "supplier_id")
	assert.Contains(t, fields, "warehouse_id")
	assert.Contains(t, fields, "items[0].product_id")
	assert.Contains(t, fields, "items[0].quantity")
	assert.Contains(t, fields, "items[0].unit_cost")
}

func TestReceiveInvoice_ReferenciasInexistentes(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.ReceiveInvoice(context.Background(), Input{
		Number:      "FC-005",
		SupplierID:  "no-existe",
		WarehouseID: "w1",
		Items:       []ItemInput{{ProductID: "p1", Quantity: 1, UnitCost: d("10")}},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.ReceiveInvoice(context.Background(), Input{
		Number:      "FC-005",
		SupplierID:  "sup1",
		WarehouseID: "no-existe",
		Items:       []ItemInput{{ProductID: "p1", Quantity: 1, UnitCost: d("10")}},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.ReceiveInvoice(context.Background(), Input{
		Number:      "FC-005",
		SupplierID:  "sup1",
		WarehouseID: "w1",
		Items:       []ItemInput{{ProductID: "fantasma", Quantity: 1, UnitCost: d("10")}},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestReceiveInvoice_FechaPorDefectoEsAhora(t *testing.T) {
	uc, _ := newTestUseCase()
	before := time.Now()

	inv, err := uc.ReceiveInvoice(context.Background(), Input{
		Number:      "FC-006",
		SupplierID:  "sup1",
		WarehouseID: "w1",
		Items:       []ItemInput{{ProductID: "p1", Quantity: 1, UnitCost: d("10")}},
	})
	require.NoError(t, err)
	assert.False(t, inv.Date.Before(before))
	assert.False(t, inv.Date.After(time.Now()))
}

func TestGetYList(t *testing.T) {
	uc, _ := newTestUseCase()

	inv, err := uc.ReceiveInvoice(context.Background(), Input{
		Number:      "FC-007",
		SupplierID:  "sup1",
		WarehouseID: "w1",
		Items:       []ItemInput{{ProductID: "p1", Quantity: 2, UnitCost: d("50")}},
	})
	require.NoError(t, err)

	got, err := uc.Get(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "FC-007", got.Number)
	require.Len(t, got.Items, 1)

	_, err = uc.Get("no-existe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	list, err := uc.List(nil, nil, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
