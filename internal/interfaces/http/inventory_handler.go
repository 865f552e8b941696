package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// InventoryHandler consultas de existencias (solo lectura).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// StockByLocation godoc
// @Summary      Existencias por ubicación
// @Tags         inventory
// @Produce      json
// @Param        type    query  string  true   "Tipo de ubicación"  Enums(warehouse, shop)
// @Param        id      query  string  true   "ID de la ubicación"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.StockListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) StockByLocation(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	page.DefaultPage()

	loc := toLocationRef(c.Query("type"), c.Query("id"))
	out, err := h.uc.StockByLocation(loc, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StockByProduct godoc
// @Summary      Existencias de un producto en todas sus ubicaciones
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id} [get]
func (h *InventoryHandler) StockByProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.StockByProduct(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
