package insighting

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/insightify-api/internal/domain"
	"github.com/vfg2006/insightify-api/pkg/utils"
)

// topProductsLimit é o tamanho do ranking de produtos do dashboard.
const topProductsLimit = 10

// distinctYears retorna os anos presentes no dataset em ordem crescente.
func distinctYears(orders []domain.Order) []int {
	seen := make(map[int]struct{})
	for _, order := range orders {
		seen[order.Year()] = struct{}{}
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)

	return years
}

// yearlyChanges agrega a métrica por ano e calcula a série de variações
// percentuais entre anos consecutivos. A contagem de pedidos usa uma
// métrica constante igual a 1.
func yearlyChanges(orders []domain.Order, metric func(domain.Order) float64) domain.YearlyChangeSeries {
	totals := make(map[int]float64)
	for _, order := range orders {
		totals[order.Year()] += metric(order)
	}

	return domain.NewYearlyChangeSeries(distinctYears(orders), totals)
}

// categoryPerformance agrega vendas, lucro e volume de pedidos por
// categoria para o gráfico de dispersão. O tamanho do marcador segue a
// convenção do dashboard original: contagem de linhas dividida por 50.
func categoryPerformance(orders []domain.Order) ([]domain.CategoryPerformancePoint, error) {
	type totals struct {
		sales  float64
		profit float64
		count  int
	}

	byCategory := make(map[string]*totals)
	for _, order := range orders {
		t, ok := byCategory[order.Category]
		if !ok {
			t = &totals{}
			byCategory[order.Category] = t
		}
		t.sales += order.Sales
		t.profit += order.Profit
		t.count++
	}

	categories := sortedKeys(byCategory)

	points := make([]domain.CategoryPerformancePoint, 0, len(categories))
	for _, category := range categories {
		color, err := domain.CategoryColor(category)
		if err != nil {
			return nil, err
		}

		t := byCategory[category]
		points = append(points, domain.CategoryPerformancePoint{
			Category:   category,
			Sales:      utils.RoundWithTwoDecimalPlace(t.sales),
			Profit:     utils.RoundWithTwoDecimalPlace(t.profit),
			Orders:     t.count,
			MarkerSize: float64(t.count) / 50,
			Color:      color,
		})
	}

	return points, nil
}

// orderDistribution monta os vetores paralelos do sunburst: um anel de
// regiões e, abaixo dele, os segmentos de cliente de cada região com a
// cor da região em versão translúcida.
func orderDistribution(orders []domain.Order) (*domain.SunburstChart, error) {
	type key struct {
		region  string
		segment string
	}

	counts := make(map[key]int)
	regionTotals := make(map[string]int)
	for _, order := range orders {
		counts[key{region: order.Region, segment: order.Segment}]++
		regionTotals[order.Region]++
	}

	regions := sortedKeys(regionTotals)

	chart := &domain.SunburstChart{}

	for _, region := range regions {
		color, err := domain.RegionColor(region)
		if err != nil {
			return nil, err
		}

		chart.Labels = append(chart.Labels, region)
		chart.Parents = append(chart.Parents, "")
		chart.Values = append(chart.Values, regionTotals[region])
		chart.Colors = append(chart.Colors, color)
	}

	for _, region := range regions {
		color, err := domain.RegionColor(region)
		if err != nil {
			return nil, err
		}

		translucent, err := domain.TranslucentColor(color)
		if err != nil {
			return nil, err
		}

		segments := make([]string, 0)
		for k := range counts {
			if k.region == region {
				segments = append(segments, k.segment)
			}
		}
		sort.Strings(segments)

		for _, segment := range segments {
			chart.Labels = append(chart.Labels, region+" - "+segment)
			chart.Parents = append(chart.Parents, region)
			chart.Values = append(chart.Values, counts[key{region: region, segment: segment}])
			chart.Colors = append(chart.Colors, translucent)
		}
	}

	return chart, nil
}

// monthlyTrend agrega as vendas por ano e mês calendário, uma série por
// ano com a cor fixa do ano.
func monthlyTrend(orders []domain.Order) ([]domain.MonthlyTrendSeries, error) {
	type key struct {
		year  int
		month time.Month
	}

	sales := make(map[key]float64)
	for _, order := range orders {
		sales[key{year: order.Year(), month: order.OrderDate.Month()}] += order.Sales
	}

	years := distinctYears(orders)

	series := make([]domain.MonthlyTrendSeries, 0, len(years))
	for _, year := range years {
		color, err := domain.YearColor(year)
		if err != nil {
			return nil, err
		}

		entry := domain.MonthlyTrendSeries{Year: year, Color: color}
		for month := time.January; month <= time.December; month++ {
			total, ok := sales[key{year: year, month: month}]
			if !ok {
				continue
			}
			entry.Months = append(entry.Months, month.String()[:3])
			entry.Sales = append(entry.Sales, total)
		}

		series = append(series, entry)
	}

	return series, nil
}

// topProducts retorna os dez produtos com maior soma da métrica
// escolhida. Empates são desfeitos pelo nome do produto, para manter o
// ranking determinístico.
func topProducts(orders []domain.Order, metric string) (*domain.ProductRanking, error) {
	var value func(domain.Order) float64

	switch metric {
	case domain.MetricSales:
		value = func(o domain.Order) float64 { return o.Sales }
	case domain.MetricProfit:
		value = func(o domain.Order) float64 { return o.Profit }
	default:
		return nil, errors.Wrapf(ErrUnknownMetric, "%q", metric)
	}

	totals := make(map[string]float64)
	for _, order := range orders {
		totals[order.ProductName] += value(order)
	}

	products := make([]domain.ProductTotal, 0, len(totals))
	for name, total := range totals {
		products = append(products, domain.ProductTotal{
			ProductName: name,
			Total:       utils.RoundWithTwoDecimalPlace(total),
		})
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Total != products[j].Total {
			return products[i].Total > products[j].Total
		}
		return products[i].ProductName < products[j].ProductName
	})

	if len(products) > topProductsLimit {
		products = products[:topProductsLimit]
	}

	return &domain.ProductRanking{Metric: metric, Products: products}, nil
}

// shippingSummary resume o tempo de envio: média arredondada e limites
// para o eixo do gauge.
func shippingSummary(orders []domain.Order) *domain.ShippingSummary {
	if len(orders) == 0 {
		return &domain.ShippingSummary{}
	}

	total := 0
	minDays := orders[0].DaysToShip()
	maxDays := minDays

	for _, order := range orders {
		days := order.DaysToShip()
		total += days
		if days < minDays {
			minDays = days
		}
		if days > maxDays {
			maxDays = days
		}
	}

	return &domain.ShippingSummary{
		AverageDays: int(math.Round(float64(total) / float64(len(orders)))),
		MinDays:     minDays,
		MaxDays:     maxDays,
	}
}

// categoryTrend agrega as vendas por ano e categoria para a barra
// empilhada de tendência.
func categoryTrend(orders []domain.Order) ([]domain.CategoryTrendPoint, error) {
	type key struct {
		year     int
		category string
	}

	sales := make(map[key]float64)
	categoriesSeen := make(map[string]struct{})
	for _, order := range orders {
		sales[key{year: order.Year(), category: order.Category}] += order.Sales
		categoriesSeen[order.Category] = struct{}{}
	}

	years := distinctYears(orders)
	categories := sortedKeys(categoriesSeen)

	points := make([]domain.CategoryTrendPoint, 0, len(years)*len(categories))
	for _, year := range years {
		for _, category := range categories {
			total, ok := sales[key{year: year, category: category}]
			if !ok {
				continue
			}

			color, err := domain.CategoryColor(category)
			if err != nil {
				return nil, err
			}

			points = append(points, domain.CategoryTrendPoint{
				Year:     year,
				Category: category,
				Color:    color,
				Sales:    total,
			})
		}
	}

	return points, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
