package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Millify formata um número grande de forma compacta ("2.30M", "15.60K"),
// no mesmo formato dos cartões de KPI do dashboard.
func Millify(value float64, precision int) string {
	units := []struct {
		threshold float64
		suffix    string
	}{
		{1e12, "T"},
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "K"},
	}

	negative := value < 0
	abs := math.Abs(value)

	formatted := fmt.Sprintf("%.*f", precision, abs)
	for _, unit := range units {
		if abs >= unit.threshold {
			formatted = fmt.Sprintf("%.*f%s", precision, abs/unit.threshold, unit.suffix)
			break
		}
	}

	if negative {
		return "-" + formatted
	}
	return formatted
}

// MillifyCurrency formata um valor monetário compacto com prefixo "$".
func MillifyCurrency(value float64, precision int) string {
	formatted := Millify(value, precision)
	if strings.HasPrefix(formatted, "-") {
		return "-$" + strings.TrimPrefix(formatted, "-")
	}
	return "$" + formatted
}
