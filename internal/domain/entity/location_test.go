package entity_test

import (
	"testing"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestLocationRef_Valid(t *testing.T) {
	assert.True(t, entity.WarehouseRef("w-1").Valid())
	assert.True(t, entity.ShopRef("s-1").Valid())
	assert.False(t, entity.LocationRef{Kind: entity.LocationWarehouse}.Valid(), "sin ID no es válida")
	assert.False(t, entity.LocationRef{Kind: "OTRO", ID: "x"}.Valid(), "tipo desconocido no es válido")
	assert.False(t, entity.LocationRef{}.Valid())
}

func TestLocationRef_Equal(t *testing.T) {
	// Mismo ID con distinto tipo son ubicaciones distintas.
	assert.False(t, entity.WarehouseRef("1").Equal(entity.ShopRef("1")))
	assert.True(t, entity.WarehouseRef("1").Equal(entity.WarehouseRef("1")))
	assert.False(t, entity.WarehouseRef("1").Equal(entity.WarehouseRef("2")))
}

func TestLocationRef_String(t *testing.T) {
	assert.Equal(t, "WAREHOUSE:abc", entity.WarehouseRef("abc").String())
	assert.Equal(t, "SHOP:abc", entity.ShopRef("abc").String())
}
