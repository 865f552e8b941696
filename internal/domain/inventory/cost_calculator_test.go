package inventory_test

import (
	"testing"

	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestWeightedAverageCost valida la fórmula de promedio ponderado con casos conocidos.
func TestWeightedAverageCost(t *testing.T) {
	tests := []struct {
		name         string
		stockActual  int64
		costoActual  decimal.Decimal
		cantEntrada  int64
		costoEntrada decimal.Decimal
		want         decimal.Decimal
	}{
		{
			name:         "mezcla mitad y mitad",
			stockActual:  10,
			costoActual:  decimal.NewFromInt(100),
			cantEntrada:  10,
			costoEntrada: decimal.NewFromInt(200),
			want:         decimal.NewFromInt(150),
		},
		{
			name:         "sin stock previo toma el costo de entrada",
			stockActual:  0,
			costoActual:  decimal.Zero,
			cantEntrada:  5,
			costoEntrada: decimal.NewFromFloat(12.50),
			want:         decimal.NewFromFloat(12.50),
		},
		{
			name:         "entrada pequeña mueve poco el promedio",
			stockActual:  90,
			costoActual:  decimal.NewFromInt(10),
			cantEntrada:  10,
			costoEntrada: decimal.NewFromInt(20),
			want:         decimal.NewFromInt(11),
		},
		{
			name:         "sin stock ni entrada devuelve cero",
			stockActual:  0,
			costoActual:  decimal.NewFromInt(100),
			cantEntrada:  0,
			costoEntrada: decimal.NewFromInt(50),
			want:         decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inventory.WeightedAverageCost(tt.stockActual, tt.costoActual, tt.cantEntrada, tt.costoEntrada)
			assert.True(t, tt.want.Equal(got), "esperado %s, obtenido %s", tt.want, got)
		})
	}
}
