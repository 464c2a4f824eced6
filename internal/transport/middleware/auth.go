package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/notetree/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// Auth rejects requests without a valid bearer token. The token is read
// from the Authorization header, or from the access_token query parameter
// for websocket upgrades, which browsers cannot send headers with.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" && isWebSocketUpgrade(r) {
				token = r.URL.Query().Get("access_token")
			}
			if token == "" {
				unauthorized(w)
				return
			}
			subject, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}
			if rec, ok := w.(subjectRecorder); ok {
				rec.recordSubject(subject)
			}
			ctx := ctxutil.WithSubject(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="notetree"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func isWebSocketUpgrade(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}
