package controllers

import (
	"strconv"

	"frontdesk/response"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter, answering 400 itself when it is malformed.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id", "id")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.BadRequest(c, "invalid query: "+err.Error())
		return false
	}
	return true
}
