package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrOperationFailed   = errors.New("la operación no pudo completarse")
)

// StockError detalla un faltante de stock: qué producto, en qué ubicación,
// cuánto se pidió y cuánto había. Envuelve ErrInsufficientStock para errors.Is.
type StockError struct {
	ProductID string
	Location  string
	Requested int64
	Available int64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s en %s: solicitado %d, disponible %d",
		e.ProductID, e.Location, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// FieldError describe un error de validación sobre un campo concreto.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError agrupa errores de validación por campo.
// Envuelve ErrInvalidInput para errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "entrada inválida (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError para un único campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
