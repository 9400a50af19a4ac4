package domain

// YearFilterAll é o valor do seletor de ano que desativa o filtro.
const YearFilterAll = "All"

// Métricas aceitas pelo ranking de produtos.
const (
	MetricSales  = "sales"
	MetricProfit = "profit"
)

// DashboardFilters lista os valores válidos do seletor de ano: "All"
// seguido de cada ano distinto presente no dataset, em ordem crescente.
type DashboardFilters struct {
	Years []string `json:"years"`
}

// KPIMetric é um indicador de cabeçalho: o valor bruto, o valor formatado
// de forma compacta e a variação percentual em relação ao ano anterior.
type KPIMetric struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Change    string  `json:"change"`
}

// KPIResponse agrupa os três cartões de KPI do topo do dashboard.
type KPIResponse struct {
	Sales  KPIMetric `json:"sales"`
	Profit KPIMetric `json:"profit"`
	Orders KPIMetric `json:"orders"`
}

// CategoryPerformancePoint é um ponto do gráfico de dispersão de
// desempenho por categoria (vendas x lucro, bolha pelo volume de pedidos).
type CategoryPerformancePoint struct {
	Category   string  `json:"category"`
	Sales      float64 `json:"sales"`
	Profit     float64 `json:"profit"`
	Orders     int     `json:"orders"`
	MarkerSize float64 `json:"marker_size"`
	Color      string  `json:"color"`
}

// SunburstChart carrega os vetores paralelos do gráfico de distribuição
// de pedidos por região e segmento.
type SunburstChart struct {
	Labels  []string `json:"labels"`
	Parents []string `json:"parents"`
	Values  []int    `json:"values"`
	Colors  []string `json:"colors"`
}

// MonthlyTrendSeries é a série mensal de vendas de um ano.
type MonthlyTrendSeries struct {
	Year   int       `json:"year"`
	Color  string    `json:"color"`
	Months []string  `json:"months"`
	Sales  []float64 `json:"sales"`
}

// ProductTotal é um produto acumulado por uma métrica.
type ProductTotal struct {
	ProductName string  `json:"product_name"`
	Total       float64 `json:"total"`
}

// ProductRanking é o top de produtos por vendas ou por lucro.
type ProductRanking struct {
	Metric   string         `json:"metric"`
	Products []ProductTotal `json:"products"`
}

// ShippingSummary resume o tempo de envio para o gráfico de gauge.
type ShippingSummary struct {
	AverageDays int `json:"average_days"`
	MinDays     int `json:"min_days"`
	MaxDays     int `json:"max_days"`
}

// CategoryTrendPoint é uma fatia da barra empilhada de vendas por
// categoria ao longo dos anos.
type CategoryTrendPoint struct {
	Year     int     `json:"year"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Sales    float64 `json:"sales"`
}
