package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/insightify-api/internal/domain"
	"github.com/vfg2006/insightify-api/internal/usecases/insighting"
	"github.com/vfg2006/insightify-api/pkg/apiErrors"
	"github.com/vfg2006/insightify-api/pkg/log"
)

// yearParam lê o valor do seletor de ano da query string. A ausência do
// parâmetro equivale a "All".
func yearParam(r *http.Request) string {
	year := r.URL.Query().Get("year")
	if year == "" {
		return domain.YearFilterAll
	}
	return year
}

// writeDashboardError traduz os erros do serviço de insights para o
// envelope de erro da API.
func writeDashboardError(w http.ResponseWriter, r *http.Request, panel string, err error) {
	logger := log.ForContext(r.Context())
	logger.WithError(err).WithField("year", yearParam(r)).Error("dashboard: erro no painel " + panel)

	switch {
	case errors.Is(err, insighting.ErrUnknownYear):
		apiErrors.WriteError(w, apiErrors.ErrUnknownYear, "Ano fora dos valores disponíveis no seletor", nil)
	case errors.Is(err, insighting.ErrUnknownMetric):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Métrica inválida. Valores aceitos: sales, profit", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, "Erro ao montar o painel do dashboard", nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, panel string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao codificar resposta do painel " + panel)
	}
}

// GetDashboardFilters retorna os valores válidos do seletor de ano.
func GetDashboardFilters(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := service.Filters()
		if err != nil {
			writeDashboardError(w, r, "filters", err)
			return
		}

		writeJSON(w, r, "filters", filters)
	})
}

// GetDashboardKPIs retorna os cartões de indicadores do topo do
// dashboard, com a variação anual de cada métrica.
func GetDashboardKPIs(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kpis, err := service.KPIs(yearParam(r))
		if err != nil {
			writeDashboardError(w, r, "kpis", err)
			return
		}

		writeJSON(w, r, "kpis", kpis)
	})
}

// GetCategoryPerformance retorna a dispersão de vendas x lucro por
// categoria.
func GetCategoryPerformance(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		points, err := service.CategoryPerformance(yearParam(r))
		if err != nil {
			writeDashboardError(w, r, "category-performance", err)
			return
		}

		writeJSON(w, r, "category-performance", points)
	})
}

// GetOrderDistribution retorna o sunburst de pedidos por região e
// segmento.
func GetOrderDistribution(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.OrderDistribution(yearParam(r))
		if err != nil {
			writeDashboardError(w, r, "order-distribution", err)
			return
		}

		writeJSON(w, r, "order-distribution", chart)
	})
}

// GetMonthlyTrend retorna a série mensal de vendas por ano.
func GetMonthlyTrend(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		series, err := service.MonthlyTrend(yearParam(r))
		if err != nil {
			writeDashboardError(w, r, "monthly-trend", err)
			return
		}

		writeJSON(w, r, "monthly-trend", series)
	})
}

// GetTopProducts retorna o top 10 de produtos pela métrica escolhida
// (sales ou profit; sales por padrão).
func GetTopProducts(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metric := r.URL.Query().Get("metric")
		if metric == "" {
			metric = domain.MetricSales
		}

		ranking, err := service.TopProducts(yearParam(r), metric)
		if err != nil {
			writeDashboardError(w, r, "top-products", err)
			return
		}

		writeJSON(w, r, "top-products", ranking)
	})
}

// GetShippingSummary retorna o resumo do tempo de envio para o gauge.
func GetShippingSummary(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.ShippingSummary(yearParam(r))
		if err != nil {
			writeDashboardError(w, r, "shipping", err)
			return
		}

		writeJSON(w, r, "shipping", summary)
	})
}

// GetCategoryTrend retorna a barra empilhada de vendas por categoria ao
// longo dos anos.
func GetCategoryTrend(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		points, err := service.CategoryTrend(yearParam(r))
		if err != nil {
			writeDashboardError(w, r, "category-trend", err)
			return
		}

		writeJSON(w, r, "category-trend", points)
	})
}
