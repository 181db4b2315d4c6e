// Package pagination reads the page window for the admin listing
// endpoints of the work request and schedule services.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// A full department rarely files more than a few dozen requests per
// day, so the window stays small by default and is capped hard.
const (
	firstPage    = 1
	defaultLimit = 25
	maxLimit     = 200
)

// Params is the validated page window of a listing call.
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse reads the page and limit query parameters, substituting the
// defaults for missing or out-of-range values and clamping limit.
func Parse(c *gin.Context) Params {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < firstPage {
		page = firstPage
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
