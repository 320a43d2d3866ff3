package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"nexstock/internal/shipment"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedShipments returns the demo shipments.
func SeedShipments() []shipment.Shipment {
	return []shipment.Shipment{
		{ID: "SHP-001", TrackingID: "TRK-839201", Type: shipment.TypeInbound, Status: shipment.StatusInTransit, Origin: "Shenzhen, CN", Destination: "WH-CA", Carrier: "Maersk Sea Freight", EstimatedDelivery: date(10, 24), ItemsCount: 400, Value: decimal.RequireFromString("36000.00"), Progress: 65},
		{ID: "SHP-002", TrackingID: "TRK-120934", Type: shipment.TypeOutbound, Status: shipment.StatusDelivered, Origin: "WH-NY", Destination: "Boston, MA", Carrier: "FedEx Ground", EstimatedDelivery: date(10, 9), ItemsCount: 24, Value: decimal.RequireFromString("3119.76"), Progress: 100},
		{ID: "SHP-003", TrackingID: "TRK-557810", Type: shipment.TypeInbound, Status: shipment.StatusCustoms, Origin: "Berlin, DE", Destination: "WH-NY", Carrier: "DHL Air", EstimatedDelivery: date(10, 18), ItemsCount: 60, Value: decimal.RequireFromString("23940.00"), Progress: 80},
		{ID: "SHP-004", TrackingID: "TRK-664102", Type: shipment.TypeOutbound, Status: shipment.StatusDelayed, Origin: "WH-TX", Destination: "Phoenix, AZ", Carrier: "UPS Freight", EstimatedDelivery: date(10, 12), ItemsCount: 35, Value: decimal.RequireFromString("3149.65"), Progress: 40},
		{ID: "SHP-005", TrackingID: "TRK-902317", Type: shipment.TypeInbound, Status: shipment.StatusPending, Origin: "Portland, OR", Destination: "WH-CA", Carrier: "AluWorks Logistics", EstimatedDelivery: date(10, 30), ItemsCount: 150, Value: decimal.RequireFromString("4498.50"), Progress: 0},
		{ID: "SHP-006", TrackingID: "TRK-311458", Type: shipment.TypeOutbound, Status: shipment.StatusInTransit, Origin: "WH-CA", Destination: "San Diego, CA", Carrier: "FedEx Express", EstimatedDelivery: date(10, 16), ItemsCount: 10, Value: decimal.RequireFromString("2495.00"), Progress: 50},
	}
}
