package middlewares

import (
	"net/http"
	"patientor-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit caps requests per second for each client IP.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(m.tooManyRequests),
	)
}

func (m *Middlewares) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	m.Renderer.WriteError(w, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests)
}
