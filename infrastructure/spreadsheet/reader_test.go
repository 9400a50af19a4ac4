package spreadsheet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/insightify-api/internal/domain"
)

// writeSheet preenche uma aba com as linhas informadas, criando a aba se
// necessário.
func writeSheet(t *testing.T, f *excelize.File, sheet string, rows [][]interface{}) {
	t.Helper()

	if sheet != f.GetSheetName(0) {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}

	for i, row := range rows {
		for j, value := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cellRef, value))
		}
	}
}

func orderHeader() []interface{} {
	header := make([]interface{}, 0, len(orderColumns))
	for _, name := range orderColumns {
		header = append(header, name)
	}
	return header
}

func orderRow(rowID int, orderID string) []interface{} {
	return []interface{}{
		rowID, orderID, "2022-03-10", "2022-03-14", "Standard Class",
		"AB-10015", "Aaron Bergman", "Consumer", "United States", "Seattle",
		"Washington", "98103", "West", "FUR-BO-10001798", "Furniture",
		"Bookcases", "Somerset Collection Bookcase", 261.96, 2, 0.0, 41.91,
	}
}

func writeSourceWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetOrders)

	writeSheet(t, f, SheetOrders, [][]interface{}{
		orderHeader(),
		orderRow(1, "CA-2022-100001"),
		orderRow(2, "CA-2022-100002"),
	})

	writeSheet(t, f, SheetPeople, [][]interface{}{
		{"Regional Manager", "Region"},
		{"Anna Andreadi", "West"},
		{"Chuck Magee", "East"},
	})

	writeSheet(t, f, SheetReturns, [][]interface{}{
		{"Returned", "Order ID"},
		{"Yes", "CA-2022-100002"},
	})

	require.NoError(t, f.SaveAs(path))
}

func TestReadSourceWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superstore.xlsx")
	writeSourceWorkbook(t, path)

	workbook, err := ReadSourceWorkbook(path)
	require.NoError(t, err)

	require.Len(t, workbook.Orders, 2)

	order := workbook.Orders[0]
	assert.Equal(t, 1, order.RowID)
	assert.Equal(t, "CA-2022-100001", order.OrderID)
	assert.Equal(t, time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC), order.OrderDate)
	assert.Equal(t, time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC), order.ShipDate)
	assert.Equal(t, "Consumer", order.Segment)
	assert.Equal(t, "West", order.Region)
	assert.Equal(t, "Furniture", order.Category)
	assert.Equal(t, "Bookcases", order.SubCategory)
	assert.Equal(t, 261.96, order.Sales)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, 41.91, order.Profit)

	// Colunas derivadas ficam zeradas na leitura do arquivo de origem
	assert.False(t, order.IsRetention)
	assert.Empty(t, order.RegionManager)

	assert.Equal(t, map[string]string{
		"West": "Anna Andreadi",
		"East": "Chuck Magee",
	}, workbook.Managers)

	_, returned := workbook.Returns["CA-2022-100002"]
	assert.True(t, returned)
	assert.Len(t, workbook.Returns, 1)
}

func TestReadSourceWorkbook_FileMissing(t *testing.T) {
	_, err := ReadSourceWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestReadSourceWorkbook_MissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superstore.xlsx")

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), SheetOrders)
	writeSheet(t, f, SheetOrders, [][]interface{}{
		orderHeader(),
		orderRow(1, "CA-2022-100001"),
	})
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ReadSourceWorkbook(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), SheetPeople)
}

func TestReadSourceWorkbook_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superstore.xlsx")

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), SheetOrders)

	// Cabeçalho sem as colunas Sales e Profit
	writeSheet(t, f, SheetOrders, [][]interface{}{
		{"Row ID", "Order ID", "Order Date"},
		{1, "CA-2022-100001", "2022-03-10"},
	})
	writeSheet(t, f, SheetPeople, [][]interface{}{
		{"Regional Manager", "Region"},
		{"Anna Andreadi", "West"},
	})
	writeSheet(t, f, SheetReturns, [][]interface{}{
		{"Returned", "Order ID"},
	})
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ReadSourceWorkbook(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Sales")
	assert.Contains(t, err.Error(), "Profit")
}

func TestWriteEnrichedOrders_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superstore_enriched.xlsx")

	orders := []domain.Order{
		{
			RowID:         1,
			OrderID:       "CA-2022-100001",
			OrderDate:     time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC),
			ShipDate:      time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC),
			ShipMode:      "Standard Class",
			CustomerID:    "AB-10015",
			CustomerName:  "Aaron Bergman",
			Segment:       "Consumer",
			Country:       "United States",
			City:          "Seattle",
			State:         "Washington",
			PostalCode:    "98103",
			Region:        "West",
			ProductID:     "FUR-BO-10001798",
			Category:      "Furniture",
			SubCategory:   "Bookcases",
			ProductName:   "Somerset Collection Bookcase",
			Sales:         261.96,
			Quantity:      2,
			Discount:      0,
			Profit:        41.91,
			IsRetention:   true,
			RegionManager: "Anna Andreadi",
		},
		{
			RowID:         2,
			OrderID:       "US-2021-200001",
			OrderDate:     time.Date(2021, 7, 2, 0, 0, 0, 0, time.UTC),
			ShipDate:      time.Date(2021, 7, 6, 0, 0, 0, 0, time.UTC),
			ShipMode:      "Second Class",
			CustomerID:    "CM-12445",
			CustomerName:  "Chuck Magee",
			Segment:       "Corporate",
			Country:       "United States",
			City:          "Chicago",
			State:         "Illinois",
			PostalCode:    "60610",
			Region:        "Central",
			ProductID:     "TEC-PH-10002275",
			Category:      "Technology",
			SubCategory:   "Phones",
			ProductName:   "Plantronics Headset",
			Sales:         89.99,
			Quantity:      1,
			Discount:      0.2,
			Profit:        -4.5,
			IsRetention:   false,
			RegionManager: "Kelly Williams",
		},
	}

	require.NoError(t, WriteEnrichedOrders(path, orders))

	loaded, err := ReadEnrichedOrders(path)
	require.NoError(t, err)
	assert.Equal(t, orders, loaded)
}

func TestReadEnrichedOrders_MissingDerivedColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superstore.xlsx")
	writeSourceWorkbook(t, path)

	// O arquivo de origem não tem as colunas derivadas
	_, err := ReadEnrichedOrders(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), ColumnIsRetention)
	assert.Contains(t, err.Error(), ColumnRegionManager)
}
