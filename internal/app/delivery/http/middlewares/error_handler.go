package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/utils"
	"runtime/debug"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in a handler into the error page.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				m.Log.Error("Recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				code, clientMessage := utils.ResolveError(m.Log, err)
				m.Renderer.WriteError(w, code, clientMessage)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
