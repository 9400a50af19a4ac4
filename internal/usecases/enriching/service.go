// Package enriching implementa a etapa offline de enriquecimento do
// dataset: a junção das três abas da planilha de origem em uma única
// tabela com as colunas derivadas.
package enriching

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/insightify-api/infrastructure/spreadsheet"
	"github.com/vfg2006/insightify-api/internal/config"
	"github.com/vfg2006/insightify-api/internal/domain"
	"github.com/vfg2006/insightify-api/pkg/utils"
)

// ErrMissingRegionManager indica uma região presente nos pedidos mas sem
// gerente no mapeamento de staff. A falha é proposital: nenhum gerente
// padrão é atribuído.
var ErrMissingRegionManager = errors.New("região sem gerente no mapeamento de staff")

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Run executa o enriquecimento completo: lê a planilha de origem, deriva
// as duas colunas e grava o resultado no arquivo enriquecido. A saída é
// sempre uma reescrita completa.
func (s *Service) Run() error {
	workbook, err := spreadsheet.ReadSourceWorkbook(s.cfg.Dataset.SourcePath)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"orders":  len(workbook.Orders),
		"regions": len(workbook.Managers),
		"returns": len(workbook.Returns),
	}).Info("Planilha de origem carregada")

	enriched, err := Enrich(workbook.Orders, workbook.Managers, workbook.Returns)
	if err != nil {
		return err
	}

	if len(enriched) > 0 && logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Exemplo de linha enriquecida: %s", utils.PrettyJson(enriched[0]))
	}

	if err := spreadsheet.WriteEnrichedOrders(s.cfg.Dataset.EnrichedPath, enriched); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"rows": len(enriched),
		"path": s.cfg.Dataset.EnrichedPath,
	}).Info("Dataset enriquecido gravado com sucesso")

	return nil
}

// Enrich deriva as colunas is_retention e region_manager de cada pedido.
// A função é pura e determinística: as mesmas três tabelas de entrada
// produzem sempre as mesmas colunas derivadas.
func Enrich(orders []domain.Order, managers map[string]string, returns map[string]struct{}) ([]domain.Order, error) {
	enriched := make([]domain.Order, len(orders))

	for i, order := range orders {
		manager, ok := managers[order.Region]
		if !ok {
			return nil, errors.Wrapf(ErrMissingRegionManager, "região %q do pedido %s", order.Region, order.OrderID)
		}

		_, returned := returns[order.OrderID]

		order.IsRetention = returned
		order.RegionManager = manager
		enriched[i] = order
	}

	return enriched, nil
}
