package http

import (
	"github.com/gin-gonic/gin"

	"nexstock/pkg/response"
)

// Create godoc
// @Summary     Create a product
// @Description Adds a product to the front of the catalog.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Product data"
// @Success     201  {object} itemEnvelope
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - sku already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newItemEnvelope(output.Item))
}

// List godoc
// @Summary     List products
// @Description Returns a page of products, newest first.
// @Tags        Products
// @Produce     json
// @Param       search       query string false "Case-insensitive match on name, sku or category"
// @Param       category     query string false "Exact category (case-insensitive)"
// @Param       warehouse_id query string false "Warehouse ID"
// @Param       low_stock    query bool   false "Only items below their minimum stock"
// @Param       ids          query string false "Comma separated product IDs"
// @Param       limit        query int    false "Page size, 0 for all (default: 0)"
// @Param       offset       query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get product detail
// @Tags        Products
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} itemEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemEnvelope(output.Item))
}

// Update godoc
// @Summary     Update a product
// @Description Partial update. Omitted fields keep their current value.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Product ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - sku already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemEnvelope(output.Item))
}

// Delete godoc
// @Summary     Delete a product
// @Tags        Products
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
