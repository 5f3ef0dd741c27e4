package middleware

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit caps requests per client IP at rate, kept in process memory.
// Rejected requests get 429 with the X-RateLimit-* headers set.
func RateLimit(rate limiter.Rate) func(http.Handler) http.Handler {
	l := limiter.New(memory.NewStore(), rate)
	mw := stdlib.NewMiddleware(l,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			zerolog.Ctx(r.Context()).Warn().Str("path", r.URL.Path).Msg("rate limit reached")
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
		}),
	)
	return mw.Handler
}
