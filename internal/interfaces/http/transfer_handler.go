package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/transfer"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// TransferHandler maneja las peticiones HTTP de traslados de inventario.
type TransferHandler struct {
	uc *transfer.UseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *transfer.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Crear traslado
// @Description  Mueve stock del origen al destino por cada línea, en una transacción.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Datos del traslado"
// @Success      201   {object}  dto.TransferResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK"
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	t, err := h.uc.Create(c.Context(), toTransferInput(in))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResult{Success: true, Transfer: toTransferResponse(t)})
}

// Update godoc
// @Summary      Editar traslado
// @Description  Reescribe el traslado: reversa los efectos anteriores y aplica los nuevos en una transacción.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del traslado"
// @Param        body  body  dto.UpdateTransferRequest  true  "Nuevos datos del traslado"
// @Success      200   {object}  dto.TransferResult
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK"
// @Router       /api/transfers/{id} [put]
func (h *TransferHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	t, err := h.uc.Update(c.Context(), id, toTransferInput(in))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.TransferResult{Success: true, Transfer: toTransferResponse(t)})
}

// Delete godoc
// @Summary      Eliminar traslado
// @Description  Reversa los efectos del traslado sobre inventario y lo elimina, en una transacción.
// @Tags         transfers
// @Produce      json
// @Param        id  path  string  true  "ID del traslado"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK"
// @Router       /api/transfers/{id} [delete]
func (h *TransferHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetByID godoc
// @Summary      Obtener traslado por ID
// @Tags         transfers
// @Produce      json
// @Param        id  path  string  true  "ID del traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [get]
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	t, err := h.uc.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toTransferResponse(t))
}

// List godoc
// @Summary      Listar traslados
// @Description  Traslados en un rango de fechas, más recientes primero.
// @Tags         transfers
// @Produce      json
// @Param        from    query  string  false  "Fecha inicial (YYYY-MM-DD o RFC3339)"
// @Param        to      query  string  false  "Fecha final (YYYY-MM-DD o RFC3339)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.TransferListResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	page.DefaultPage()

	from, err := parseDateParam("from", c.Query("from"))
	if err != nil {
		return writeError(c, err)
	}
	to, err := parseDateParam("to", c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}

	transfers, err := h.uc.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		items = append(items, *toTransferResponse(t))
	}
	return c.JSON(dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

func toTransferInput(in dto.CreateTransferRequest) transfer.Input {
	items := make([]transfer.ItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, transfer.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return transfer.Input{
		Source:      toLocationRef(in.SourceType, in.SourceID),
		Destination: toLocationRef(in.DestType, in.DestID),
		Items:       items,
	}
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	items := make([]dto.TransferItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, dto.TransferItemResponse{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.TransferResponse{
		ID:          t.ID,
		Source:      toLocationResponse(t.Source),
		Destination: toLocationResponse(t.Destination),
		Status:      string(t.Status),
		Date:        t.Date,
		Items:       items,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// toLocationRef convierte el par (type, id) del request en la referencia tipada.
// Un type desconocido produce una referencia inválida que la validación del
// caso de uso rechaza con error de campo.
func toLocationRef(kind, id string) entity.LocationRef {
	switch kind {
	case "warehouse":
		return entity.WarehouseRef(id)
	case "shop":
		return entity.ShopRef(id)
	default:
		return entity.LocationRef{ID: id}
	}
}

func toLocationResponse(loc entity.LocationRef) dto.LocationRefResponse {
	var kind string
	switch loc.Kind {
	case entity.LocationWarehouse:
		kind = "warehouse"
	case entity.LocationShop:
		kind = "shop"
	}
	return dto.LocationRefResponse{Type: kind, ID: loc.ID}
}

// parseDateParam acepta YYYY-MM-DD o RFC3339; cadena vacía devuelve nil.
func parseDateParam(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, domain.NewValidationError(field, "fecha inválida, use YYYY-MM-DD o RFC3339")
	}
	return &t, nil
}
