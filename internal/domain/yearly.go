package domain

import "fmt"

// YearlyChange é a variação percentual de uma métrica em relação ao ano
// anterior, formatada como texto para exibição direta no cartão de KPI.
type YearlyChange struct {
	Year   int    `json:"year"`
	Change string `json:"change"`
}

// YearlyChangeSeries é a série de variações anuais de uma métrica,
// ordenada de forma crescente por ano.
type YearlyChangeSeries []YearlyChange

// ChangeFor retorna a variação registrada para um ano específico.
func (s YearlyChangeSeries) ChangeFor(year int) (string, bool) {
	for _, entry := range s {
		if entry.Year == year {
			return entry.Change, true
		}
	}
	return "", false
}

// Latest retorna a variação do ano mais recente da série.
func (s YearlyChangeSeries) Latest() string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1].Change
}

// NewYearlyChangeSeries calcula a série de variações a partir dos valores
// agregados por ano. O primeiro ano não tem ano anterior e por convenção
// recebe "0.0%". Uma base zero produz o token literal "NaN", preservado
// por compatibilidade com o display de KPIs.
func NewYearlyChangeSeries(years []int, valuesByYear map[int]float64) YearlyChangeSeries {
	series := make(YearlyChangeSeries, 0, len(years))

	for i, year := range years {
		if i == 0 {
			series = append(series, YearlyChange{Year: year, Change: "0.0%"})
			continue
		}

		base := valuesByYear[years[i-1]]
		if base == 0 {
			series = append(series, YearlyChange{Year: year, Change: "NaN"})
			continue
		}

		delta := (valuesByYear[year] - base) / base * 100
		series = append(series, YearlyChange{
			Year:   year,
			Change: fmt.Sprintf("%.1f%%", delta),
		})
	}

	return series
}
