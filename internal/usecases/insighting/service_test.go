package insighting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/insightify-api/internal/config"
	"github.com/vfg2006/insightify-api/internal/domain"
	"github.com/vfg2006/insightify-api/internal/usecases/insighting/mocks"
)

func testConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		Dataset: config.Dataset{CacheTTL: ttl},
	}
}

// sampleOrders monta um dataset pequeno com dois anos e duas linhas do
// mesmo pedido em 2021.
func sampleOrders() []domain.Order {
	build := func(orderID string, year int, sales, profit float64) domain.Order {
		return domain.Order{
			OrderID:   orderID,
			OrderDate: time.Date(year, time.March, 10, 0, 0, 0, 0, time.UTC),
			ShipDate:  time.Date(year, time.March, 14, 0, 0, 0, 0, time.UTC),
			Region:    "West",
			Segment:   "Consumer",
			Category:  "Furniture",
			Sales:     sales,
			Profit:    profit,
		}
	}

	return []domain.Order{
		build("CA-2020-1", 2020, 100, 20),
		build("CA-2021-1", 2021, 120, 10),
		build("CA-2021-1", 2021, 30, 5),
	}
}

func TestService_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockDatasetSource(ctrl)
	source.EXPECT().Load().Return(sampleOrders(), nil)

	service := NewService(testConfig(time.Hour), source)

	filters, err := service.Filters()
	assert.NoError(t, err)
	assert.Equal(t, []string{"All", "2020", "2021"}, filters.Years)
}

func TestService_DatasetCachedWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Uma única leitura do arquivo atende várias interações dentro da
	// janela de TTL
	source := mocks.NewMockDatasetSource(ctrl)
	source.EXPECT().Load().Return(sampleOrders(), nil).Times(1)

	service := NewService(testConfig(time.Hour), source)

	_, err := service.Filters()
	assert.NoError(t, err)

	_, err = service.KPIs("All")
	assert.NoError(t, err)

	_, err = service.ShippingSummary("2021")
	assert.NoError(t, err)
}

func TestService_DatasetReloadedAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockDatasetSource(ctrl)
	source.EXPECT().Load().Return(sampleOrders(), nil).Times(2)

	// TTL zero expira o snapshot imediatamente
	service := NewService(testConfig(0), source)

	_, err := service.Filters()
	assert.NoError(t, err)

	_, err = service.Filters()
	assert.NoError(t, err)
}

func TestService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockDatasetSource(ctrl)
	source.EXPECT().Load().Return(sampleOrders(), nil).Times(2)

	service := NewService(testConfig(time.Hour), source)

	_, err := service.Filters()
	assert.NoError(t, err)

	// Refresh ignora a janela de TTL e recarrega
	snapshotID, err := service.Refresh()
	assert.NoError(t, err)
	assert.NotEmpty(t, snapshotID)
}

func TestService_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockDatasetSource(ctrl)
	source.EXPECT().Load().Return(nil, errors.New("arquivo ausente"))

	service := NewService(testConfig(time.Hour), source)

	filters, err := service.Filters()
	assert.Nil(t, filters)
	assert.Error(t, err)
}

func TestService_KPIs_AllYears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockDatasetSource(ctrl)
	source.EXPECT().Load().Return(sampleOrders(), nil)

	service := NewService(testConfig(time.Hour), source)

	kpis, err := service.KPIs("All")
	assert.NoError(t, err)

	assert.Equal(t, "Sales", kpis.Sales.Label)
	assert.Equal(t, 250.0, kpis.Sales.Value)
	assert.Equal(t, "$250.00", kpis.Sales.Formatted)
	// 100 -> 150 = +50%
	assert.Equal(t, "50.0%", kpis.Sales.Change)

	assert.Equal(t, 35.0, kpis.Profit.Value)
	// 20 -> 15 = -25%
	assert.Equal(t, "-25.0%", kpis.Profit.Change)

	// Pedidos distintos: CA-2020-1 e CA-2021-1
	assert.Equal(t, 2.0, kpis.Orders.Value)
	assert.Equal(t, "2", kpis.Orders.Formatted)
	// 1 linha em 2020 -> 2 linhas em 2021 = +100%
	assert.Equal(t, "100.0%", kpis.Orders.Change)
}

func TestService_KPIs_SpecificYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockDatasetSource(ctrl)
	source.EXPECT().Load().Return(sampleOrders(), nil)

	service := NewService(testConfig(time.Hour), source)

	kpis, err := service.KPIs("2020")
	assert.NoError(t, err)

	// Totais filtrados pelo ano, variação do próprio ano (primeiro da
	// série por convenção)
	assert.Equal(t, 100.0, kpis.Sales.Value)
	assert.Equal(t, "0.0%", kpis.Sales.Change)
	assert.Equal(t, 1.0, kpis.Orders.Value)
}

func TestService_KPIs_UnknownYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockDatasetSource(ctrl)
	source.EXPECT().Load().Return(sampleOrders(), nil)

	service := NewService(testConfig(time.Hour), source)

	tests := []string{"2019", "abc", "2024"}
	for _, year := range tests {
		t.Run(year, func(t *testing.T) {
			kpis, err := service.KPIs(year)
			assert.Nil(t, kpis)
			assert.True(t, errors.Is(err, ErrUnknownYear))
		})
	}
}

func TestService_FilteredPanels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockDatasetSource(ctrl)
	source.EXPECT().Load().Return(sampleOrders(), nil)

	service := NewService(testConfig(time.Hour), source)

	points, err := service.CategoryPerformance("2021")
	assert.NoError(t, err)
	assert.Len(t, points, 1)
	assert.Equal(t, 150.0, points[0].Sales)
	assert.Equal(t, 2, points[0].Orders)

	chart, err := service.OrderDistribution("2021")
	assert.NoError(t, err)
	assert.Equal(t, []string{"West", "West - Consumer"}, chart.Labels)
	assert.Equal(t, []int{2, 2}, chart.Values)

	trend, err := service.MonthlyTrend("All")
	assert.NoError(t, err)
	assert.Len(t, trend, 2)

	summary, err := service.ShippingSummary("All")
	assert.NoError(t, err)
	assert.Equal(t, 4, summary.AverageDays)
}

func TestChangeForSelection(t *testing.T) {
	series := domain.YearlyChangeSeries{
		{Year: 2020, Change: "0.0%"},
		{Year: 2021, Change: "50.0%"},
	}

	tests := []struct {
		name     string
		year     string
		expected string
	}{
		{name: "Filtro All usa o último ano", year: "All", expected: "50.0%"},
		{name: "Filtro vazio equivale a All", year: "", expected: "50.0%"},
		{name: "Ano presente na série", year: "2021", expected: "50.0%"},
		{name: "Primeiro ano da série", year: "2020", expected: "0.0%"},
		{name: "Ano fora da série recebe 0%", year: "2019", expected: "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, changeForSelection(series, tt.year))
		})
	}
}
