package usecase

import (
	"context"
	"fmt"

	"nexstock/internal/model"
	"nexstock/internal/report"
	"nexstock/pkg/gsheets"
	"nexstock/pkg/response"
)

var inventoryHeader = []any{"ID", "Name", "Category", "SKU", "Price", "Stock", "Min Stock", "Status", "Value", "Supplier", "Location", "Warehouse"}

// ExportInventory writes the current catalog to the configured spreadsheet.
func (uc *implUseCase) ExportInventory(ctx context.Context) (report.ExportOutput, error) {
	if uc.sheets == nil {
		return report.ExportOutput{}, report.ErrExportNotConfigured
	}

	items, err := uc.items.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportInventory Snapshot: %v", err)
		return report.ExportOutput{}, err
	}

	rows := make([][]any, 0, len(items)+2)
	rows = append(rows, inventoryHeader)
	for _, item := range items {
		rows = append(rows, []any{
			item.ID,
			item.Name,
			item.Category,
			item.SKU,
			item.Price,
			item.Stock,
			item.MinStock,
			string(model.StockStatusOf(item.Stock, item.MinStock)),
			report.ItemValue(item).StringFixed(2),
			item.Supplier,
			item.Location,
			item.WarehouseID,
		})
	}
	rows = append(rows, []any{fmt.Sprintf("Exported %s", uc.now().Format(response.DateTimeFormat))})

	res, err := uc.sheets.Write(ctx, gsheets.WriteRequest{SheetName: uc.sheetName, Rows: rows})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportInventory Write: %v", err)
		return report.ExportOutput{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	uc.l.Infof(ctx, "uc.ExportInventory: wrote %d rows to %s", res.UpdatedRows, res.UpdatedRange)
	return report.ExportOutput{
		SpreadsheetID: res.SpreadsheetID,
		UpdatedRange:  res.UpdatedRange,
		UpdatedRows:   res.UpdatedRows,
	}, nil
}
