package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/procurement"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// InvoiceHandler maneja las peticiones HTTP de facturas de compra.
// Las facturas son inmutables: solo crear y consultar.
type InvoiceHandler struct {
	uc *procurement.UseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *procurement.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Receive godoc
// @Summary      Recibir factura de compra
// @Description  Suma stock en la bodega destino y recalcula el costo promedio ponderado por producto, en una transacción.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveInvoiceRequest  true  "Factura de compra"
// @Success      201   {object}  dto.InvoiceResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "DUPLICATE: número de factura repetido"
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	inv, err := h.uc.ReceiveInvoice(c.Context(), toInvoiceInput(in))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InvoiceResult{Success: true, Invoice: toInvoiceResponse(inv)})
}

// GetByID godoc
// @Summary      Obtener factura por ID
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	inv, err := h.uc.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toInvoiceResponse(inv))
}

// List godoc
// @Summary      Listar facturas de compra
// @Tags         invoices
// @Produce      json
// @Param        from    query  string  false  "Fecha inicial (YYYY-MM-DD o RFC3339)"
// @Param        to      query  string  false  "Fecha final (YYYY-MM-DD o RFC3339)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
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

	invoices, err := h.uc.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, *toInvoiceResponse(inv))
	}
	return c.JSON(dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

func toInvoiceInput(in dto.ReceiveInvoiceRequest) procurement.Input {
	items := make([]procurement.ItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, procurement.ItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
		})
	}
	var date time.Time
	if in.Date != nil {
		date = *in.Date
	}
	return procurement.Input{
		Number:      in.Number,
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Date:        date,
		Items:       items,
	}
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
		})
	}
	return &dto.InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		SupplierID:  inv.SupplierID,
		WarehouseID: inv.WarehouseID,
		Date:        inv.Date,
		Items:       items,
		CreatedAt:   inv.CreatedAt,
	}
}
