package http

import (
	"time"

	"github.com/shopspring/decimal"

	"nexstock/internal/shipment"
	"nexstock/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	TrackingID        string          `json:"trackingId"        binding:"max=32"`
	Type              string          `json:"type"              binding:"omitempty,oneof=Inbound Outbound"`
	Status            string          `json:"status"`
	Origin            string          `json:"origin"            binding:"max=255"`
	Destination       string          `json:"destination"       binding:"max=255"`
	Carrier           string          `json:"carrier"           binding:"max=255"`
	EstimatedDelivery string          `json:"estimatedDelivery" binding:"omitempty,datetime=2006-01-02"`
	ItemsCount        int             `json:"itemsCount"`
	Value             decimal.Decimal `json:"value" swaggertype:"number"`
	Progress          int             `json:"progress"`
}

func (r createReq) toInput() shipment.CreateInput {
	eta, _ := time.Parse(response.DateFormat, r.EstimatedDelivery)
	return shipment.CreateInput{
		TrackingID:        r.TrackingID,
		Type:              shipment.Type(r.Type),
		Status:            shipment.Status(r.Status),
		Origin:            r.Origin,
		Destination:       r.Destination,
		Carrier:           r.Carrier,
		EstimatedDelivery: eta,
		ItemsCount:        r.ItemsCount,
		Value:             r.Value,
		Progress:          r.Progress,
	}
}

type listReq struct {
	Search string `form:"search"`
	Type   string `form:"type"`
	Status string `form:"status"`
}

func (r listReq) toInput() shipment.ListInput {
	return shipment.ListInput{Search: r.Search, Type: shipment.Type(r.Type), Status: shipment.Status(r.Status)}
}

type updateReq struct {
	ID                string           `json:"-"`
	TrackingID        *string          `json:"trackingId"        binding:"omitempty,max=32"`
	Type              *string          `json:"type"              binding:"omitempty,oneof=Inbound Outbound"`
	Status            *string          `json:"status"`
	Origin            *string          `json:"origin"`
	Destination       *string          `json:"destination"`
	Carrier           *string          `json:"carrier"`
	EstimatedDelivery *string          `json:"estimatedDelivery" binding:"omitempty,datetime=2006-01-02"`
	ItemsCount        *int             `json:"itemsCount"`
	Value             *decimal.Decimal `json:"value" swaggertype:"number"`
	Progress          *int             `json:"progress"`
}

func (r updateReq) toInput() shipment.UpdateInput {
	in := shipment.UpdateInput{
		ID:          r.ID,
		TrackingID:  r.TrackingID,
		Origin:      r.Origin,
		Destination: r.Destination,
		Carrier:     r.Carrier,
		ItemsCount:  r.ItemsCount,
		Value:       r.Value,
		Progress:    r.Progress,
	}
	if r.Type != nil {
		t := shipment.Type(*r.Type)
		in.Type = &t
	}
	if r.Status != nil {
		s := shipment.Status(*r.Status)
		in.Status = &s
	}
	if r.EstimatedDelivery != nil {
		eta, _ := time.Parse(response.DateFormat, *r.EstimatedDelivery)
		in.EstimatedDelivery = &eta
	}
	return in
}

// --- Response DTOs ---

type shipmentResp struct {
	ID                string          `json:"id"`
	TrackingID        string          `json:"trackingId"`
	Type              shipment.Type   `json:"type"`
	Status            shipment.Status `json:"status"`
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	Carrier           string          `json:"carrier"`
	EstimatedDelivery response.Date   `json:"estimatedDelivery" swaggertype:"string"`
	ItemsCount        int             `json:"itemsCount"`
	Value             response.Money  `json:"value" swaggertype:"number"`
	Progress          int             `json:"progress"`
}

func newShipmentResp(s shipment.Shipment) shipmentResp {
	return shipmentResp{
		ID:                s.ID,
		TrackingID:        s.TrackingID,
		Type:              s.Type,
		Status:            s.Status,
		Origin:            s.Origin,
		Destination:       s.Destination,
		Carrier:           s.Carrier,
		EstimatedDelivery: response.Date(s.EstimatedDelivery),
		ItemsCount:        s.ItemsCount,
		Value:             response.Money(s.Value),
		Progress:          s.Progress,
	}
}

type shipmentEnvelope struct {
	Shipment shipmentResp `json:"shipment"`
}

type listResp struct {
	Shipments []shipmentResp `json:"shipments"`
}

func (h *handler) newListResp(shipments []shipment.Shipment) listResp {
	out := make([]shipmentResp, len(shipments))
	for i, s := range shipments {
		out[i] = newShipmentResp(s)
	}
	return listResp{Shipments: out}
}

type statsResp struct {
	InTransit int `json:"inTransit"`
	Delayed   int `json:"delayed"`
	Delivered int `json:"delivered"`
}
