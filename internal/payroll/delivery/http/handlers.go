package http

import (
	"github.com/gin-gonic/gin"

	"nexstock/internal/payroll"
	"nexstock/pkg/response"
)

// List godoc
// @Summary     List payroll records
// @Description Records for a month with a summary of the listed records.
// @Tags        Payroll
// @Produce     json
// @Param       month  query string false "Month, \"October 2024\" or \"2024-10\""
// @Param       search query string false "Match on staff name or department"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/payroll [GET]
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

// Summary godoc
// @Summary     Payroll summary
// @Tags        Payroll
// @Produce     json
// @Param       month  query string false "Month"
// @Param       search query string false "Match on staff name or department"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/payroll/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	sum, err := h.uc.Summary(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(sum))
}

// Months godoc
// @Summary     Months with payroll records
// @Tags        Payroll
// @Produce     json
// @Success     200 {object} monthsResp
// @Router      /api/v1/payroll/months [GET]
func (h *handler) Months(c *gin.Context) {
	ctx := c.Request.Context()

	months, err := h.uc.Months(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Months: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	if months == nil {
		months = []string{}
	}

	response.OK(c, monthsResp{Months: months})
}

// Create godoc
// @Summary     Create a payroll record
// @Description A zero baseSalary is derived from the member's annual salary.
// @Tags        Payroll
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Record data"
// @Success     201 {object} recordEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - record exists for the month"
// @Router      /api/v1/payroll [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	rec, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, recordEnvelope{Record: newRecordResp(rec)})
}

// Detail godoc
// @Summary     Get payroll record
// @Tags        Payroll
// @Produce     json
// @Param       id path string true "Record ID"
// @Success     200 {object} recordEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/payroll/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	rec, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, recordEnvelope{Record: newRecordResp(rec)})
}

// Pay godoc
// @Summary     Process payment
// @Description Marks the record Paid with today's payment date.
// @Tags        Payroll
// @Produce     json
// @Param       id path string true "Record ID"
// @Success     200 {object} recordEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already paid"
// @Router      /api/v1/payroll/{id}/pay [POST]
func (h *handler) Pay(c *gin.Context) {
	ctx := c.Request.Context()

	rec, err := h.uc.Pay(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Pay: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, recordEnvelope{Record: newRecordResp(rec)})
}

// UpdateStatus godoc
// @Summary     Change payroll status
// @Tags        Payroll
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Record ID"
// @Param       body body updateStatusReq true "New status"
// @Success     200 {object} recordEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/payroll/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	rec, err := h.uc.UpdateStatus(ctx, c.Param("id"), payroll.Status(req.Status))
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, recordEnvelope{Record: newRecordResp(rec)})
}
