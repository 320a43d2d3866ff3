package model

// ViewState names a dashboard screen a client can switch to.
type ViewState string

const (
	ViewDashboard ViewState = "DASHBOARD"
	ViewInventory ViewState = "INVENTORY"
	ViewWarehouse ViewState = "WAREHOUSE"
	ViewSuppliers ViewState = "SUPPLIERS"
	ViewShipments ViewState = "SHIPMENTS"
	ViewStaff     ViewState = "STAFF"
	ViewReports   ViewState = "REPORTS"
	ViewSettings  ViewState = "SETTINGS"
)
