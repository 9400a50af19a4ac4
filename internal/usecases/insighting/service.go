package insighting

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/insightify-api/internal/config"
	"github.com/vfg2006/insightify-api/internal/domain"
	"github.com/vfg2006/insightify-api/pkg/utils"
)

// Erros de validação do seletor do dashboard
var (
	ErrUnknownYear   = errors.New("ano fora dos valores disponíveis no seletor")
	ErrUnknownMetric = errors.New("métrica de ranking desconhecida")
)

// snapshot é uma carga imutável do dataset. As séries de variação anual
// são calculadas uma única vez por carga, pois não dependem do filtro.
type snapshot struct {
	id            string
	orders        []domain.Order
	years         []int
	loadedAt      time.Time
	salesChanges  domain.YearlyChangeSeries
	profitChanges domain.YearlyChangeSeries
	orderChanges  domain.YearlyChangeSeries
}

// Service implementa Insighter e DatasetRefresher sobre um cache de
// dataset com TTL fixo. As agregações recomputam a cada chamada; apenas
// a leitura do arquivo é amortizada pela janela de cache.
type Service struct {
	cfg    *config.Config
	source DatasetSource

	mu       sync.Mutex
	snapshot *snapshot
}

func NewService(cfg *config.Config, source DatasetSource) *Service {
	return &Service{
		cfg:    cfg,
		source: source,
	}
}

// dataset retorna o snapshot corrente, recarregando o arquivo quando a
// janela de TTL expirou.
func (s *Service) dataset() (*snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil && time.Since(s.snapshot.loadedAt) < s.cfg.Dataset.CacheTTL {
		return s.snapshot, nil
	}

	return s.load()
}

// Refresh descarta o snapshot corrente e recarrega o dataset,
// independentemente da janela de TTL. Retorna o ID do novo snapshot.
func (s *Service) Refresh() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return "", err
	}

	return snap.id, nil
}

// load deve ser chamado com o mutex adquirido.
func (s *Service) load() (*snapshot, error) {
	orders, err := s.source.Load()
	if err != nil {
		return nil, err
	}

	snapshotID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar ID do snapshot do dataset")
		snapshotID = "unknown"
	}

	snap := &snapshot{
		id:            snapshotID,
		orders:        orders,
		years:         distinctYears(orders),
		loadedAt:      time.Now(),
		salesChanges:  yearlyChanges(orders, func(o domain.Order) float64 { return o.Sales }),
		profitChanges: yearlyChanges(orders, func(o domain.Order) float64 { return o.Profit }),
		orderChanges:  yearlyChanges(orders, func(domain.Order) float64 { return 1 }),
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snap.id,
		"rows":        len(snap.orders),
		"years":       snap.years,
	}).Info("Snapshot do dataset carregado")

	s.snapshot = snap
	return snap, nil
}

// filterByYear aplica o seletor de ano ao snapshot: "All" retorna todas
// as linhas; um ano específico retorna exatamente as linhas cujo ano
// derivado é igual ao selecionado.
func filterByYear(snap *snapshot, year string) ([]domain.Order, error) {
	if year == "" || year == domain.YearFilterAll {
		return snap.orders, nil
	}

	selected, err := strconv.Atoi(year)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownYear, "%q", year)
	}

	known := false
	for _, y := range snap.years {
		if y == selected {
			known = true
			break
		}
	}
	if !known {
		return nil, errors.Wrapf(ErrUnknownYear, "%d", selected)
	}

	filtered := make([]domain.Order, 0, len(snap.orders))
	for _, order := range snap.orders {
		if order.Year() == selected {
			filtered = append(filtered, order)
		}
	}

	return filtered, nil
}

// Filters lista os valores válidos do seletor de ano.
func (s *Service) Filters() (*domain.DashboardFilters, error) {
	snap, err := s.dataset()
	if err != nil {
		return nil, err
	}

	years := make([]string, 0, len(snap.years)+1)
	years = append(years, domain.YearFilterAll)
	for _, year := range snap.years {
		years = append(years, strconv.Itoa(year))
	}

	return &domain.DashboardFilters{Years: years}, nil
}

// KPIs monta os três cartões de indicadores do topo do dashboard.
func (s *Service) KPIs(year string) (*domain.KPIResponse, error) {
	snap, err := s.dataset()
	if err != nil {
		return nil, err
	}

	orders, err := filterByYear(snap, year)
	if err != nil {
		return nil, err
	}

	var totalSales, totalProfit float64
	distinctOrders := make(map[string]struct{})

	for _, order := range orders {
		totalSales += order.Sales
		totalProfit += order.Profit
		distinctOrders[order.OrderID] = struct{}{}
	}

	return &domain.KPIResponse{
		Sales: domain.KPIMetric{
			Label:     "Sales",
			Value:     totalSales,
			Formatted: utils.MillifyCurrency(totalSales, 2),
			Change:    changeForSelection(snap.salesChanges, year),
		},
		Profit: domain.KPIMetric{
			Label:     "Profit",
			Value:     totalProfit,
			Formatted: utils.MillifyCurrency(totalProfit, 2),
			Change:    changeForSelection(snap.profitChanges, year),
		},
		Orders: domain.KPIMetric{
			Label:     "Orders",
			Value:     float64(len(distinctOrders)),
			Formatted: fmt.Sprintf("%d", len(distinctOrders)),
			Change:    changeForSelection(snap.orderChanges, year),
		},
	}, nil
}

// changeForSelection escolhe a variação exibida no cartão: a do último
// ano da série quando o filtro é "All", a do ano selecionado caso
// contrário, com "0%" quando o ano não aparece na série.
func changeForSelection(series domain.YearlyChangeSeries, year string) string {
	if year == "" || year == domain.YearFilterAll {
		return series.Latest()
	}

	selected, err := strconv.Atoi(year)
	if err != nil {
		return "0%"
	}

	if change, ok := series.ChangeFor(selected); ok {
		return change
	}
	return "0%"
}

func (s *Service) CategoryPerformance(year string) ([]domain.CategoryPerformancePoint, error) {
	orders, err := s.filteredOrders(year)
	if err != nil {
		return nil, err
	}

	return categoryPerformance(orders)
}

func (s *Service) OrderDistribution(year string) (*domain.SunburstChart, error) {
	orders, err := s.filteredOrders(year)
	if err != nil {
		return nil, err
	}

	return orderDistribution(orders)
}

func (s *Service) MonthlyTrend(year string) ([]domain.MonthlyTrendSeries, error) {
	orders, err := s.filteredOrders(year)
	if err != nil {
		return nil, err
	}

	return monthlyTrend(orders)
}

func (s *Service) TopProducts(year, metric string) (*domain.ProductRanking, error) {
	orders, err := s.filteredOrders(year)
	if err != nil {
		return nil, err
	}

	return topProducts(orders, metric)
}

func (s *Service) ShippingSummary(year string) (*domain.ShippingSummary, error) {
	orders, err := s.filteredOrders(year)
	if err != nil {
		return nil, err
	}

	return shippingSummary(orders), nil
}

func (s *Service) CategoryTrend(year string) ([]domain.CategoryTrendPoint, error) {
	orders, err := s.filteredOrders(year)
	if err != nil {
		return nil, err
	}

	return categoryTrend(orders)
}

func (s *Service) filteredOrders(year string) ([]domain.Order, error) {
	snap, err := s.dataset()
	if err != nil {
		return nil, err
	}

	return filterByYear(snap, year)
}
