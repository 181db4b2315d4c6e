package handler

import (
	"strconv"

	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// writeError maps an application error onto the response envelope. Unknown
// errors come back as a 500 with their message intact.
func writeError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	c.JSON(appErr.Status, response.Error(appErr.Status, appErr.Message))
}

// pathID parses the named path parameter as an integer id. On failure it
// writes a 400 and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		writeError(c, apperr.Validation("Invalid %s", name))
		return 0, false
	}
	return id, true
}
