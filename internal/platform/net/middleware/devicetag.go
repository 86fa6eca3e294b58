package middleware

import (
	"net/http"

	pnet "followup/internal/platform/net"
	"followup/internal/platform/logger"
)

// DeviceTag stores the submitting device's id on the request context so
// downstream logs and repos can attribute writes. parse reads the id off
// the request; requests without one pass through untagged.
func DeviceTag(parse func(*http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if parse != nil {
				if id, err := parse(r); err == nil && id != "" {
					ctx := pnet.WithRequest(r.Context(), "", id)
					ctx = logger.WithRequest(ctx, "", id)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
