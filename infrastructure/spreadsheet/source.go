package spreadsheet

import "github.com/vfg2006/insightify-api/internal/domain"

// EnrichedSource expõe o arquivo enriquecido como fonte de dados do
// serviço de insights.
type EnrichedSource struct {
	path string
}

func NewEnrichedSource(path string) *EnrichedSource {
	return &EnrichedSource{path: path}
}

// Load lê um snapshot imutável da tabela enriquecida.
func (s *EnrichedSource) Load() ([]domain.Order, error) {
	return ReadEnrichedOrders(s.path)
}
