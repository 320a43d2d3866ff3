package http

import (
	"github.com/gin-gonic/gin"

	"nexstock/pkg/response"
)

// Create godoc
// @Summary     Create a shipment
// @Description A blank trackingId is generated as TRK-NNNNNN.
// @Tags        Shipments
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Shipment data"
// @Success     201 {object} shipmentEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - tracking id already exists"
// @Router      /api/v1/shipments [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, shipmentEnvelope{Shipment: newShipmentResp(s)})
}

// List godoc
// @Summary     List shipments
// @Tags        Shipments
// @Produce     json
// @Param       search query string false "Match on tracking id, origin, destination or carrier"
// @Param       type   query string false "Inbound or Outbound"
// @Param       status query string false "Shipment status"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/shipments [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	shipments, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(shipments))
}

// Stats godoc
// @Summary     Shipment counters
// @Tags        Shipments
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/shipments/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, statsResp{InTransit: stats.InTransit, Delayed: stats.Delayed, Delivered: stats.Delivered})
}

// Detail godoc
// @Summary     Get shipment
// @Tags        Shipments
// @Produce     json
// @Param       id path string true "Shipment ID"
// @Success     200 {object} shipmentEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/shipments/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, shipmentEnvelope{Shipment: newShipmentResp(s)})
}

// Update godoc
// @Summary     Update a shipment
// @Tags        Shipments
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Shipment ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} shipmentEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - tracking id already exists"
// @Router      /api/v1/shipments/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, shipmentEnvelope{Shipment: newShipmentResp(s)})
}

// Delete godoc
// @Summary     Delete a shipment
// @Tags        Shipments
// @Produce     json
// @Param       id path string true "Shipment ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/shipments/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
