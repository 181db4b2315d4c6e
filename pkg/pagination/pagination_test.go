package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func parseQuery(t *testing.T, rawQuery string) Params {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/work_request?"+rawQuery, nil)
	return Parse(c)
}

func TestParseDefaults(t *testing.T) {
	p := parseQuery(t, "")

	assert.Equal(t, firstPage, p.Page)
	assert.Equal(t, defaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestParseComputesOffset(t *testing.T) {
	p := parseQuery(t, "page=3&limit=10")

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 20, p.Offset)
}

func TestParseRejectsBadValues(t *testing.T) {
	p := parseQuery(t, "page=zero&limit=-5")

	assert.Equal(t, firstPage, p.Page)
	assert.Equal(t, defaultLimit, p.Limit)
}

func TestParseClampsLimit(t *testing.T) {
	p := parseQuery(t, "limit=5000")

	assert.Equal(t, maxLimit, p.Limit)
}
