package httpkit

import (
	"compress/flate"
	"net/http"

	"followup/internal/modkit/scope"
	pnet "followup/internal/platform/net"
	"followup/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.DeviceTag(NewPortFunc(nil).Parse),
		ScopeDevice(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.Logger(),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * 1e9), // 30s
	}
}

// ScopeDevice copies the tagged device id into the module scope bag so
// services can attribute writes without reaching back into the transport
func ScopeDevice() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := pnet.DeviceID(r.Context()); id != "" {
				r = r.WithContext(scope.With(r.Context(), map[string]string{"device_id": id}))
			}
			next.ServeHTTP(w, r)
		})
	}
}
