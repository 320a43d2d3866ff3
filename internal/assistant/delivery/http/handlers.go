package http

import (
	"github.com/gin-gonic/gin"

	"nexstock/pkg/response"
)

// Ask godoc
// @Summary     Ask the inventory assistant
// @Description Resolves a natural-language query into an answer and an optional filter,
// @Description then updates the session's highlighted products. Model failures degrade to a fixed answer.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Param       body       body askReq true "Query"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions/{session_id}/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAskResp(output))
}

// Transcript godoc
// @Summary     Get assistant session
// @Description Returns the transcript, highlighted product IDs and active view of a session.
// @Tags        Assistant
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} transcriptResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/assistant/sessions/{session_id} [GET]
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Transcript(ctx, c.Param("session_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcript: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTranscriptResp(output))
}

// ClearHighlight godoc
// @Summary     Clear highlighted products
// @Tags        Assistant
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/sessions/{session_id}/highlight [DELETE]
func (h *handler) ClearHighlight(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearHighlight(ctx, c.Param("session_id")); err != nil {
		h.l.Errorf(ctx, "uc.ClearHighlight: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Forecast godoc
// @Summary     Generate a demand forecast
// @Description Asks the model for a short narrative forecast for the product.
// @Tags        Forecasts
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} forecastResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/products/{id}/forecast [POST]
func (h *handler) Forecast(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Forecast(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Forecast: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newForecastResp(output.Forecast, output.Stale))
}

// LatestForecast godoc
// @Summary     Get the latest forecast
// @Tags        Forecasts
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} forecastResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/products/{id}/forecast [GET]
func (h *handler) LatestForecast(c *gin.Context) {
	ctx := c.Request.Context()

	f, err := h.uc.LatestForecast(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newForecastResp(f, false))
}

// InFlight godoc
// @Summary     List products with a forecast in progress
// @Tags        Forecasts
// @Produce     json
// @Success     200 {object} inFlightResp
// @Router      /api/v1/forecasts/in-flight [GET]
func (h *handler) InFlight(c *gin.Context) {
	response.OK(c, inFlightResp{ProductIDs: h.uc.InFlightForecasts(c.Request.Context())})
}
