package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/wb-go/wbf/ginext"
)

// RateLimit limits requests per client IP. rate uses the limiter format,
// e.g. "100-H" for a hundred requests an hour.
func RateLimit(rate string) (ginext.HandlerFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("parse rate %q: %w", rate, err)
	}

	h := mgin.NewMiddleware(limiter.New(memory.NewStore(), r),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			_ = c.Error(domain.ErrRateLimited)
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			_ = c.Error(fmt.Errorf("rate limiter: %w", err))
		}),
	)
	return func(c *ginext.Context) { h(c) }, nil
}

// BodyLimit caps request bodies: multipart uploads at multipart bytes, anything
// else at json bytes. Reading past the cap fails with *http.MaxBytesError.
func BodyLimit(json, multipart int64) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		n := json
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			n = multipart
		}
		if n > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
