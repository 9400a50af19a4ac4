package spreadsheet

import (
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/insightify-api/internal/domain"
)

// WriteEnrichedOrders grava a tabela enriquecida em um novo arquivo.
// A escrita é sempre uma reescrita completa, sem semântica incremental.
func WriteEnrichedOrders(path string, orders []domain.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetOrders)

	header := append(append([]string{}, orderColumns...), ColumnIsRetention, ColumnRegionManager)
	for i, name := range header {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetOrders, cellRef, name); err != nil {
			return err
		}
	}

	for i, order := range orders {
		values := []interface{}{
			order.RowID,
			order.OrderID,
			order.OrderDate.Format(time.DateOnly),
			order.ShipDate.Format(time.DateOnly),
			order.ShipMode,
			order.CustomerID,
			order.CustomerName,
			order.Segment,
			order.Country,
			order.City,
			order.State,
			order.PostalCode,
			order.Region,
			order.ProductID,
			order.Category,
			order.SubCategory,
			order.ProductName,
			order.Sales,
			order.Quantity,
			order.Discount,
			order.Profit,
			order.IsRetention,
			order.RegionManager,
		}

		for j, value := range values {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetOrders, cellRef, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "erro ao gravar a planilha enriquecida em %s", path)
	}

	return nil
}
