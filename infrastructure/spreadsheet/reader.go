// Package spreadsheet concentra a leitura e escrita das planilhas do
// dataset de vendas. Qualquer aba ou coluna obrigatória ausente falha na
// carga, sem caminho de recuperação parcial.
package spreadsheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/insightify-api/internal/domain"
)

// Nomes das abas esperadas no arquivo de origem.
const (
	SheetOrders  = "Orders"
	SheetPeople  = "People"
	SheetReturns = "Returns"
)

// Colunas derivadas pelo enriquecimento. Os nomes em minúsculas são
// mantidos por compatibilidade com o arquivo enriquecido já publicado.
const (
	ColumnIsRetention   = "is_retention"
	ColumnRegionManager = "region_manager"
)

// orderColumns são as colunas obrigatórias da aba de pedidos.
var orderColumns = []string{
	"Row ID",
	"Order ID",
	"Order Date",
	"Ship Date",
	"Ship Mode",
	"Customer ID",
	"Customer Name",
	"Segment",
	"Country",
	"City",
	"State",
	"Postal Code",
	"Region",
	"Product ID",
	"Category",
	"Sub-Category",
	"Product Name",
	"Sales",
	"Quantity",
	"Discount",
	"Profit",
}

// dateLayouts são os formatos de data aceitos nas células das planilhas.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/2006",
	"01/02/2006",
}

// SourceWorkbook é o conteúdo das três abas do arquivo de origem, já
// indexado para o enriquecimento: pedidos, mapeamento região → gerente e
// conjunto de pedidos devolvidos.
type SourceWorkbook struct {
	Orders   []domain.Order
	Managers map[string]string
	Returns  map[string]struct{}
}

// ReadSourceWorkbook lê o arquivo de origem com as abas Orders, People e
// Returns.
func ReadSourceWorkbook(path string) (*SourceWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir a planilha %s", path)
	}
	defer f.Close()

	orders, err := readOrdersSheet(f, false)
	if err != nil {
		return nil, err
	}

	managers, err := readPeopleSheet(f)
	if err != nil {
		return nil, err
	}

	returns, err := readReturnsSheet(f)
	if err != nil {
		return nil, err
	}

	return &SourceWorkbook{
		Orders:   orders,
		Managers: managers,
		Returns:  returns,
	}, nil
}

// ReadEnrichedOrders lê a aba Orders do arquivo enriquecido, incluindo as
// colunas derivadas is_retention e region_manager.
func ReadEnrichedOrders(path string) ([]domain.Order, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir a planilha %s", path)
	}
	defer f.Close()

	return readOrdersSheet(f, true)
}

func readOrdersSheet(f *excelize.File, enriched bool) ([]domain.Order, error) {
	rows, err := f.GetRows(SheetOrders)
	if err != nil {
		return nil, errors.Wrapf(err, "aba %q ausente na planilha", SheetOrders)
	}

	required := orderColumns
	if enriched {
		required = append(append([]string{}, orderColumns...), ColumnIsRetention, ColumnRegionManager)
	}

	index, err := headerIndex(rows, required, SheetOrders)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(rows)-1)

	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		order, err := parseOrderRow(row, index, enriched)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d da aba %q", i+2, SheetOrders)
		}

		orders = append(orders, order)
	}

	if len(orders) == 0 {
		return nil, errors.Errorf("aba %q não contém linhas de dados", SheetOrders)
	}

	return orders, nil
}

func readPeopleSheet(f *excelize.File) (map[string]string, error) {
	rows, err := f.GetRows(SheetPeople)
	if err != nil {
		return nil, errors.Wrapf(err, "aba %q ausente na planilha", SheetPeople)
	}

	index, err := headerIndex(rows, []string{"Region", "Regional Manager"}, SheetPeople)
	if err != nil {
		return nil, err
	}

	managers := make(map[string]string)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		managers[cell(row, index["Region"])] = cell(row, index["Regional Manager"])
	}

	return managers, nil
}

func readReturnsSheet(f *excelize.File) (map[string]struct{}, error) {
	rows, err := f.GetRows(SheetReturns)
	if err != nil {
		return nil, errors.Wrapf(err, "aba %q ausente na planilha", SheetReturns)
	}

	index, err := headerIndex(rows, []string{"Order ID"}, SheetReturns)
	if err != nil {
		return nil, err
	}

	returns := make(map[string]struct{})
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		returns[cell(row, index["Order ID"])] = struct{}{}
	}

	return returns, nil
}

// headerIndex mapeia o nome de cada coluna obrigatória para a sua posição
// na linha de cabeçalho.
func headerIndex(rows [][]string, required []string, sheet string) (map[string]int, error) {
	if len(rows) == 0 {
		return nil, errors.Errorf("aba %q está vazia", sheet)
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, errors.Errorf("aba %q sem as colunas obrigatórias: %s", sheet, strings.Join(missing, ", "))
	}

	return index, nil
}

func parseOrderRow(row []string, index map[string]int, enriched bool) (domain.Order, error) {
	var order domain.Order
	var err error

	if order.RowID, err = parseInt(cell(row, index["Row ID"])); err != nil {
		return order, errors.Wrap(err, "coluna Row ID")
	}

	order.OrderID = cell(row, index["Order ID"])

	if order.OrderDate, err = parseDate(cell(row, index["Order Date"])); err != nil {
		return order, errors.Wrap(err, "coluna Order Date")
	}

	if order.ShipDate, err = parseDate(cell(row, index["Ship Date"])); err != nil {
		return order, errors.Wrap(err, "coluna Ship Date")
	}

	order.ShipMode = cell(row, index["Ship Mode"])
	order.CustomerID = cell(row, index["Customer ID"])
	order.CustomerName = cell(row, index["Customer Name"])
	order.Segment = cell(row, index["Segment"])
	order.Country = cell(row, index["Country"])
	order.City = cell(row, index["City"])
	order.State = cell(row, index["State"])
	order.PostalCode = cell(row, index["Postal Code"])
	order.Region = cell(row, index["Region"])
	order.ProductID = cell(row, index["Product ID"])
	order.Category = cell(row, index["Category"])
	order.SubCategory = cell(row, index["Sub-Category"])
	order.ProductName = cell(row, index["Product Name"])

	if order.Sales, err = parseFloat(cell(row, index["Sales"])); err != nil {
		return order, errors.Wrap(err, "coluna Sales")
	}

	if order.Quantity, err = parseInt(cell(row, index["Quantity"])); err != nil {
		return order, errors.Wrap(err, "coluna Quantity")
	}

	if order.Discount, err = parseFloat(cell(row, index["Discount"])); err != nil {
		return order, errors.Wrap(err, "coluna Discount")
	}

	if order.Profit, err = parseFloat(cell(row, index["Profit"])); err != nil {
		return order, errors.Wrap(err, "coluna Profit")
	}

	if enriched {
		if order.IsRetention, err = strconv.ParseBool(strings.ToLower(cell(row, index[ColumnIsRetention]))); err != nil {
			return order, errors.Wrap(err, "coluna is_retention")
		}
		order.RegionManager = cell(row, index[ColumnRegionManager])
	}

	return order, nil
}

// cell retorna o conteúdo de uma célula, tolerando linhas mais curtas que
// o cabeçalho (o excelize omite células vazias no fim da linha).
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, errors.Errorf("data em formato não reconhecido: %q", value)
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
}

func parseInt(value string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(value, ",", ""))
}
