package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// StockActual es la suma del producto en TODAS las ubicaciones antes de la recepción.
// Si no había stock, el nuevo costo es el costo de entrada.
func WeightedAverageCost(stockActual int64, costoActual decimal.Decimal, cantEntrada int64, costoEntrada decimal.Decimal) decimal.Decimal {
	existing := decimal.NewFromInt(stockActual)
	incoming := decimal.NewFromInt(cantEntrada)
	sum := existing.Add(incoming)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if stockActual <= 0 {
		return costoEntrada
	}
	num := existing.Mul(costoActual).Add(incoming.Mul(costoEntrada))
	return num.Div(sum)
}
