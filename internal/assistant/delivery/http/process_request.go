package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("session_id")
	return req, nil
}
