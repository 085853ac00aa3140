package models

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnvelopeContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestResponsesEchoRateLimitFromContext(t *testing.T) {
	c := newEnvelopeContext(t)
	rate := &RateLimiter{Limit: 100, Remaining: 42, ResetAt: time.Now(), ResetInSeconds: 30}
	c.Set("rateLimiter", rate)

	resp := SuccessResponse(c, "ok", nil)
	require.NotNil(t, resp.Rate)
	assert.Equal(t, 42, resp.Rate.Remaining)

	resp = ErrorResponse(c, "nope")
	require.NotNil(t, resp.Rate)
	assert.Equal(t, 100, resp.Rate.Limit)

	resp = PaginatedResponse(c, "ok", nil, &Pagination{Page: 1})
	require.NotNil(t, resp.Rate)
}

func TestResponsesWithoutRateLimiter(t *testing.T) {
	c := newEnvelopeContext(t)

	assert.Nil(t, SuccessResponse(c, "ok", nil).Rate)
	assert.Nil(t, ErrorResponse(c, "nope").Rate)
	assert.Nil(t, getRateFromContext(nil))

	// A foreign value under the key is ignored, not asserted on
	c.Set("rateLimiter", "not-a-rate")
	assert.Nil(t, SuccessResponse(c, "ok", nil).Rate)
}
