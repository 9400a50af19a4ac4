package insighting

import "github.com/vfg2006/insightify-api/internal/domain"

// DatasetSource carrega um snapshot imutável da tabela enriquecida.
type DatasetSource interface {
	Load() ([]domain.Order, error)
}

// Insighter expõe os dados agregados de cada painel do dashboard. Todas
// as operações aceitam o valor do seletor de ano ("All" ou um ano
// presente no dataset) e recalculam as agregações sobre o snapshot
// filtrado a cada chamada.
type Insighter interface {
	Filters() (*domain.DashboardFilters, error)
	KPIs(year string) (*domain.KPIResponse, error)
	CategoryPerformance(year string) ([]domain.CategoryPerformancePoint, error)
	OrderDistribution(year string) (*domain.SunburstChart, error)
	MonthlyTrend(year string) ([]domain.MonthlyTrendSeries, error)
	TopProducts(year, metric string) (*domain.ProductRanking, error)
	ShippingSummary(year string) (*domain.ShippingSummary, error)
	CategoryTrend(year string) ([]domain.CategoryTrendPoint, error)
}

// DatasetRefresher força a recarga do dataset fora da janela de TTL.
// Implementado pelo Service e consumido pela cron de recarga.
type DatasetRefresher interface {
	Refresh() (string, error)
}
