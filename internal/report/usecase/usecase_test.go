package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogmem "nexstock/internal/catalog/repository/memory"
	catalogUC "nexstock/internal/catalog/usecase"
	"nexstock/internal/report"
	"nexstock/internal/report/repository/memory"
	"nexstock/pkg/gsheets"
	"nexstock/pkg/log"
)

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) Write(ctx context.Context, req gsheets.WriteRequest) (gsheets.WriteResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(gsheets.WriteResult), args.Error(1)
}

func newTestUseCase(w gsheets.Writer) report.UseCase {
	l := log.NewNop()
	items := catalogUC.New(catalogmem.New(l, true), nil, l)
	return New(memory.New(), items, w, "", l)
}

func TestDashboard(t *testing.T) {
	out, err := newTestUseCase(nil).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, out.TotalProducts)
	assert.Equal(t, 665, out.TotalStock)
	assert.Equal(t, 3, out.LowStockCount)
	assert.Equal(t, "45707.13", out.TotalValue.StringFixed(2))
	assert.Len(t, out.Sales, 7)
	assert.Len(t, out.Categories, 4)
}

func TestInventory(t *testing.T) {
	out, err := newTestUseCase(nil).Inventory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "45707.13", out.TotalValue.StringFixed(2))
	require.Len(t, out.LowStockItems, 3)
	assert.Equal(t, "2", out.LowStockItems[0].ID)

	require.Len(t, out.ValueByCategory, 4)
	assert.Equal(t, "Electronics", out.ValueByCategory[0].Name)
	assert.Equal(t, "Home", out.ValueByCategory[3].Name)
	assert.Equal(t, "5250.00", out.ValueByCategory[3].Value.StringFixed(2))
}

func TestSales(t *testing.T) {
	out, err := newTestUseCase(nil).Sales(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "19550.00", out.TotalRevenue.StringFixed(2))
	assert.Equal(t, 136, out.TotalOrders)
	assert.Equal(t, "143.75", out.AvgOrderValue.StringFixed(2))
	assert.Equal(t, "8211.00", out.GrossProfit.StringFixed(2))
	require.Len(t, out.Series, 7)
	assert.Equal(t, "Sun", out.Series[6].Label)
}

func TestExportInventory_NotConfigured(t *testing.T) {
	_, err := newTestUseCase(nil).ExportInventory(context.Background())
	assert.ErrorIs(t, err, report.ErrExportNotConfigured)
}

func TestExportInventory(t *testing.T) {
	w := new(mockWriter)
	w.On("Write", mock.Anything, mock.MatchedBy(func(req gsheets.WriteRequest) bool {
		return req.SheetName == "Inventory" &&
			len(req.Rows) == 12 &&
			req.Rows[1][1] == "Wireless Headphones" &&
			req.Rows[1][8] == "5849.55"
	})).Return(gsheets.WriteResult{SpreadsheetID: "sheet", UpdatedRange: "Inventory!A1:L12", UpdatedRows: 12}, nil)

	out, err := newTestUseCase(w).ExportInventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), out.UpdatedRows)
	assert.Equal(t, "sheet", out.SpreadsheetID)
	w.AssertExpectations(t)
}

func TestExportInventory_WriteFails(t *testing.T) {
	w := new(mockWriter)
	w.On("Write", mock.Anything, mock.Anything).Return(gsheets.WriteResult{}, errors.New("quota exceeded"))

	_, err := newTestUseCase(w).ExportInventory(context.Background())
	assert.ErrorIs(t, err, report.ErrExportFailed)
}
