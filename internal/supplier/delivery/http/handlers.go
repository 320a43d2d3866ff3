package http

import (
	"github.com/gin-gonic/gin"

	"nexstock/pkg/response"
)

// Create godoc
// @Summary     Create a supplier
// @Tags        Suppliers
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Supplier data"
// @Success     201 {object} supplierEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suppliers [POST]
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

	response.Created(c, supplierEnvelope{Supplier: newSupplierResp(s)})
}

// List godoc
// @Summary     List suppliers
// @Tags        Suppliers
// @Produce     json
// @Param       search   query string false "Match on name or category"
// @Param       category query string false "Exact category, All for any"
// @Param       status   query string false "Active, Inactive, Pending or All"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/suppliers [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Stats godoc
// @Summary     Supplier counters
// @Tags        Suppliers
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/suppliers/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, statsResp{
		Total:        stats.Total,
		Active:       stats.Active,
		Inactive:     stats.Inactive,
		NewThisMonth: stats.NewThisMonth,
	})
}

// Detail godoc
// @Summary     Get supplier
// @Tags        Suppliers
// @Produce     json
// @Param       id path string true "Supplier ID"
// @Success     200 {object} supplierEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/suppliers/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, supplierEnvelope{Supplier: newSupplierResp(s)})
}

// Update godoc
// @Summary     Update a supplier
// @Tags        Suppliers
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Supplier ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} supplierEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/suppliers/{id} [PUT]
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

	response.OK(c, supplierEnvelope{Supplier: newSupplierResp(s)})
}

// Delete godoc
// @Summary     Delete a supplier
// @Tags        Suppliers
// @Produce     json
// @Param       id path string true "Supplier ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/suppliers/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
