package entity

// LocationKind distingue los dos tipos de ubicación donde puede residir inventario.
type LocationKind string

const (
	LocationWarehouse LocationKind = "WAREHOUSE" // bodega
	LocationShop      LocationKind = "SHOP"      // tienda
)

// LocationRef referencia una ubicación concreta (bodega o tienda).
// Reemplaza el par nullable warehouse_id/shop_id: siempre exactamente un tipo y un ID,
// con lo que el estado "ambos poblados" o "ninguno poblado" no es representable.
type LocationRef struct {
	Kind LocationKind
	ID   string
}

// WarehouseRef construye la referencia a una bodega.
func WarehouseRef(id string) LocationRef {
	return LocationRef{Kind: LocationWarehouse, ID: id}
}

// ShopRef construye la referencia a una tienda.
func ShopRef(id string) LocationRef {
	return LocationRef{Kind: LocationShop, ID: id}
}

// Valid indica si la referencia tiene un tipo conocido y un ID no vacío.
func (l LocationRef) Valid() bool {
	return (l.Kind == LocationWarehouse || l.Kind == LocationShop) && l.ID != ""
}

// Equal compara tipo e ID.
func (l LocationRef) Equal(other LocationRef) bool {
	return l.Kind == other.Kind && l.ID == other.ID
}

// String devuelve "KIND:id"; se usa en mensajes de error y como clave de ordenamiento.
func (l LocationRef) String() string {
	return string(l.Kind) + ":" + l.ID
}
