package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "nexstock/internal/assistant/delivery/http"
	assistantUC "nexstock/internal/assistant/usecase"
	catalogHTTP "nexstock/internal/catalog/delivery/http"
	catalogRepo "nexstock/internal/catalog/repository"
	catalogMemory "nexstock/internal/catalog/repository/memory"
	catalogPostgre "nexstock/internal/catalog/repository/postgre"
	catalogUC "nexstock/internal/catalog/usecase"
	"nexstock/internal/middleware"
	payrollHTTP "nexstock/internal/payroll/delivery/http"
	payrollMemory "nexstock/internal/payroll/repository/memory"
	payrollUC "nexstock/internal/payroll/usecase"
	reportHTTP "nexstock/internal/report/delivery/http"
	reportMemory "nexstock/internal/report/repository/memory"
	reportUC "nexstock/internal/report/usecase"
	shipmentHTTP "nexstock/internal/shipment/delivery/http"
	shipmentMemory "nexstock/internal/shipment/repository/memory"
	shipmentUC "nexstock/internal/shipment/usecase"
	staffHTTP "nexstock/internal/staff/delivery/http"
	staffMemory "nexstock/internal/staff/repository/memory"
	staffUC "nexstock/internal/staff/usecase"
	supplierHTTP "nexstock/internal/supplier/delivery/http"
	supplierMemory "nexstock/internal/supplier/repository/memory"
	supplierUC "nexstock/internal/supplier/usecase"
	warehouseHTTP "nexstock/internal/warehouse/delivery/http"
	warehouseRepo "nexstock/internal/warehouse/repository"
	warehouseMemory "nexstock/internal/warehouse/repository/memory"
	warehousePostgre "nexstock/internal/warehouse/repository/postgre"
	warehouseUC "nexstock/internal/warehouse/usecase"
)

// setupInventoryDomains wires the catalog and everything that reads it:
// warehouses, the assistant and reports.
func (srv HTTPServer) setupInventoryDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	var (
		whRepo  warehouseRepo.Repository
		catRepo catalogRepo.Repository
	)
	if srv.db != nil {
		whRepo = warehousePostgre.New(srv.db, srv.l)
		catRepo = catalogPostgre.New(srv.db, srv.l)
		srv.l.Infof(ctx, "Catalog store: postgres")
	} else {
		whRepo = warehouseMemory.New()
		catRepo = catalogMemory.New(srv.l, true)
		srv.l.Infof(ctx, "Catalog store: memory")
	}

	// 2. UseCases
	catalog := catalogUC.New(catRepo, whRepo, srv.l)
	warehouses := warehouseUC.New(whRepo, catalog, srv.l)
	assistant := assistantUC.New(srv.llm, catalog, srv.l, srv.assistant)
	reports := reportUC.New(reportMemory.New(), catalog, srv.sheets, srv.sheetName, srv.l)

	if !srv.llm.Available() {
		srv.l.Warnf(ctx, "No language model configured, assistant runs in degraded mode")
	}
	if srv.sheets == nil {
		srv.l.Infof(ctx, "Google Sheets not configured, inventory export disabled")
	}

	// 3. Handlers + routes
	catalogHTTP.RegisterRoutes(api, catalogHTTP.New(srv.l, catalog))
	warehouseHTTP.RegisterRoutes(api, warehouseHTTP.New(srv.l, warehouses))
	assistantHTTP.RegisterRoutes(api, assistantHTTP.New(srv.l, assistant), mw)
	reportHTTP.RegisterRoutes(api, reportHTTP.New(srv.l, reports))

	srv.l.Infof(ctx, "Inventory domains registered")
	return nil
}

// setupOperationsDomains wires suppliers, shipments, staff and payroll.
// These are always kept in memory.
func (srv HTTPServer) setupOperationsDomains(ctx context.Context, api *gin.RouterGroup) {
	suppliers := supplierUC.New(supplierMemory.New(srv.l), srv.l)
	shipments := shipmentUC.New(shipmentMemory.New(srv.l), srv.l)
	staff := staffUC.New(staffMemory.New(srv.l), srv.l)
	payroll := payrollUC.New(payrollMemory.New(srv.l), staff, srv.l)

	supplierHTTP.RegisterRoutes(api, supplierHTTP.New(srv.l, suppliers))
	shipmentHTTP.RegisterRoutes(api, shipmentHTTP.New(srv.l, shipments))
	staffHTTP.RegisterRoutes(api, staffHTTP.New(srv.l, staff))
	payrollHTTP.RegisterRoutes(api, payrollHTTP.New(srv.l, payroll))

	srv.l.Infof(ctx, "Operations domains registered")
}
