package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/insightify-api/internal/api/handler"
	"github.com/vfg2006/insightify-api/internal/domain"
	"github.com/vfg2006/insightify-api/internal/usecases/insighting"
	"github.com/vfg2006/insightify-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/insightify-api/pkg/apiErrors"
)

func doRequest(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, req)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	return apiErr
}

func TestGetDashboardFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().Filters().Return(&domain.DashboardFilters{
		Years: []string{"All", "2020", "2021", "2022", "2023"},
	}, nil)

	recorder := doRequest(t, handler.GetDashboardFilters(service), "/v1/dashboard/filters")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var filters domain.DashboardFilters
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&filters))
	assert.Equal(t, []string{"All", "2020", "2021", "2022", "2023"}, filters.Years)
}

func TestGetDashboardKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().KPIs("2021").Return(&domain.KPIResponse{
		Sales: domain.KPIMetric{Label: "Sales", Value: 250, Formatted: "$250.00", Change: "50.0%"},
	}, nil)

	recorder := doRequest(t, handler.GetDashboardKPIs(service), "/v1/dashboard/kpis?year=2021")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var kpis domain.KPIResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&kpis))
	assert.Equal(t, "$250.00", kpis.Sales.Formatted)
	assert.Equal(t, "50.0%", kpis.Sales.Change)
}

func TestGetDashboardKPIs_DefaultsToAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem o parâmetro year, o filtro é "All"
	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().KPIs(domain.YearFilterAll).Return(&domain.KPIResponse{}, nil)

	recorder := doRequest(t, handler.GetDashboardKPIs(service), "/v1/dashboard/kpis")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetDashboardKPIs_UnknownYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().KPIs("2019").Return(nil, errors.Wrap(insighting.ErrUnknownYear, "2019"))

	recorder := doRequest(t, handler.GetDashboardKPIs(service), "/v1/dashboard/kpis?year=2019")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apiErrors.ErrUnknownYear, decodeError(t, recorder).Code)
}

func TestGetDashboardKPIs_DatasetLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().KPIs(domain.YearFilterAll).Return(nil, errors.New("arquivo ausente"))

	recorder := doRequest(t, handler.GetDashboardKPIs(service), "/v1/dashboard/kpis")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, apiErrors.ErrDatasetLoad, decodeError(t, recorder).Code)
}

func TestGetTopProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().TopProducts("All", domain.MetricProfit).Return(&domain.ProductRanking{
		Metric: domain.MetricProfit,
		Products: []domain.ProductTotal{
			{ProductName: "Lamp", Total: 40},
		},
	}, nil)

	recorder := doRequest(t, handler.GetTopProducts(service), "/v1/dashboard/charts/top-products?metric=profit")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var ranking domain.ProductRanking
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&ranking))
	assert.Equal(t, domain.MetricProfit, ranking.Metric)
	require.Len(t, ranking.Products, 1)
	assert.Equal(t, "Lamp", ranking.Products[0].ProductName)
}

func TestGetTopProducts_DefaultsToSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().TopProducts("All", domain.MetricSales).Return(&domain.ProductRanking{Metric: domain.MetricSales}, nil)

	recorder := doRequest(t, handler.GetTopProducts(service), "/v1/dashboard/charts/top-products")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetTopProducts_UnknownMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().TopProducts("All", "quantity").Return(nil, errors.Wrap(insighting.ErrUnknownMetric, "quantity"))

	recorder := doRequest(t, handler.GetTopProducts(service), "/v1/dashboard/charts/top-products?metric=quantity")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, recorder).Code)
}

func TestGetOrderDistribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().OrderDistribution("2022").Return(&domain.SunburstChart{
		Labels:  []string{"West", "West - Consumer"},
		Parents: []string{"", "West"},
		Values:  []int{2, 2},
		Colors:  []string{"#005C53", "rgba(0,92,83,0.7)"},
	}, nil)

	recorder := doRequest(t, handler.GetOrderDistribution(service), "/v1/dashboard/charts/order-distribution?year=2022")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var chart domain.SunburstChart
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&chart))
	assert.Equal(t, []string{"", "West"}, chart.Parents)
	assert.Equal(t, "rgba(0,92,83,0.7)", chart.Colors[1])
}

func TestGetShippingSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().ShippingSummary("All").Return(&domain.ShippingSummary{
		AverageDays: 4,
		MinDays:     0,
		MaxDays:     7,
	}, nil)

	recorder := doRequest(t, handler.GetShippingSummary(service), "/v1/dashboard/charts/shipping")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var summary domain.ShippingSummary
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&summary))
	assert.Equal(t, 4, summary.AverageDays)
	assert.Equal(t, 7, summary.MaxDays)
}
