package utils

import "math"

// ToMinorUnits converte um valor em reais para centavos, com
// arredondamento half-up. Toda a matemática monetária a partir daqui é
// feita em inteiros.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converte centavos de volta para reais, apenas para
// exibição.
func FromMinorUnits(cents int64) float64 {
	return float64(cents) / 100
}
