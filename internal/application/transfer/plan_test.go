package transfer

import (
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockPlan_FusionaDeltasDelMismoPar(t *testing.T) {
	w1 := entity.WarehouseRef("w1")
	s1 := entity.ShopRef("s1")

	p := newStockPlan()
	p.add("p1", w1, 6)  // reversa del original
	p.add("p1", w1, -8) // nueva versión
	p.add("p1", s1, -6)
	p.add("p1", s1, 8)

	require.Len(t, p.deltas, 2)
	assert.Equal(t, int64(-2), p.deltas["p1|"+w1.String()].quantity)
	assert.Equal(t, int64(2), p.deltas["p1|"+s1.String()].quantity)
}

func TestStockPlan_DeltaNetoCeroNoTocaLaFila(t *testing.T) {
	store := newMemStore()
	w1 := entity.WarehouseRef("w1")

	p := newStockPlan()
	p.add("p1", w1, 6)
	p.add("p1", w1, -6)

	require.NoError(t, p.apply(&memInventoryRepo{store: store}, time.Now()))
	// Sin delta neto no debe crearse ni actualizarse ningún registro.
	assert.Empty(t, store.stock)
}

func TestStockPlan_SaldoNegativoDetieneElPlan(t *testing.T) {
	store := newMemStore()
	w1 := entity.WarehouseRef("w1")
	store.seedStock("p1", w1, 3)

	p := newStockPlan()
	p.add("p1", w1, -5)

	err := p.apply(&memInventoryRepo{store: store}, time.Now())
	require.Error(t, err)

	var sErr *domain.StockError
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, "p1", sErr.ProductID)
	assert.Equal(t, w1.String(), sErr.Location)
	assert.Equal(t, int64(5), sErr.Requested)
	assert.Equal(t, int64(3), sErr.Available)
}

func TestStockPlan_BajarACeroDejaRegistroVacio(t *testing.T) {
	store := newMemStore()
	w1 := entity.WarehouseRef("w1")
	store.seedStock("p1", w1, 4)

	p := newStockPlan()
	p.add("p1", w1, -4)

	require.NoError(t, p.apply(&memInventoryRepo{store: store}, time.Now()))
	rec, ok := store.stock[stockKey("p1", w1)]
	require.True(t, ok, "el registro debe conservarse con cantidad 0")
	assert.Equal(t, int64(0), rec.Quantity)
}
