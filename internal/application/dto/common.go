package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// FieldDetail detalle de validación de un campo.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StockDetail detalle de un faltante de stock.
type StockDetail struct {
	ProductID string `json:"product_id"`
	Location  string `json:"location,omitempty"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
}

// ErrorResponse cuerpo de error HTTP. El contrato con la capa de presentación
// es un resultado discriminado: nunca cruza una excepción, siempre
// {success:false, code, message} con detalle opcional.
type ErrorResponse struct {
	Success bool          `json:"success"` // siempre false
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Fields  []FieldDetail `json:"fields,omitempty"`
	Stock   *StockDetail  `json:"stock,omitempty"`
}
