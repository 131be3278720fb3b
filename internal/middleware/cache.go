package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/rocgym/jobboard/internal/config"
)

// cachedResponse is the envelope stored in Redis for a cache entry.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyCapture duplicates the response body into a buffer while streaming
// it to the client, so a successful response can be stored after the
// handler ran.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	if w.buf.Len() < w.limit {
		n := w.limit - w.buf.Len()
		if n > len(b) {
			n = len(b)
		}
		w.buf.Write(b[:n])
	}
	return w.ResponseWriter.Write(b)
}

// NewResponseCache returns a Redis-backed cache for GET responses, keyed
// on route and query string.  It is only attached to the job listing
// route: GET /jobs/:id must not be cached because every read has the side
// effect of incrementing the posting's view counter.  Only 200 responses
// small enough for the configured body limit are stored.  With caching
// disabled or Redis down the middleware is a pass-through.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
			key := fmt.Sprintf("%s:%x", cfg.Prefix, sum)

			if raw, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(cached.Status, cached.ContentType, cached.Body)
				}
			}

			cw := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && cw.buf.Len() < cfg.MaxBodyBytes {
				entry := cachedResponse{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				}
				if raw, err := json.Marshal(entry); err == nil {
					// Detached context: the client may already be gone.
					_ = rdb.SetEx(context.Background(), key, raw, cfg.TTL).Err()
				}
			}
			return nil
		}
	}
}
