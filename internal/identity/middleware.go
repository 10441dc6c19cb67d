package identity

import (
	"net/http"
	"strings"

	"jobportal/board-service/internal/auth"
)

// Middleware resolves the acting identity from a bearer token and stores
// it in the request context. Requests without an Authorization header pass
// through anonymously; the public listing endpoints stay reachable and the
// gate denies mutating operations downstream. A present-but-invalid token
// is rejected outright.
func Middleware(tokens *auth.Tokens, svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				jsonError(w, "authorization header must be a bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				jsonError(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ident, err := svc.ByID(r.Context(), claims.Subject)
			if err != nil {
				jsonError(w, "unknown identity", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), ident)))
		})
	}
}
