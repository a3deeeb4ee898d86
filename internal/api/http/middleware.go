package http

import (
	"context"
	"net/http"
	"strings"

	"carrental-backoffice/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "staff_claims"

// AuthMiddleware validates the bearer token and stores the staff claims
// on the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireFleetManagement gates fleet mutations on the caller's role. It
// must run inside RequireAuth.
func (m *AuthMiddleware) RequireFleetManagement(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if !claims.Role.CanManageFleet() {
			respondError(w, http.StatusForbidden, "insufficient role")
			return
		}
		next(w, r)
	}
}

// ClaimsFromContext returns the staff claims set by RequireAuth, or nil.
func ClaimsFromContext(ctx context.Context) *security.StaffClaims {
	claims, _ := ctx.Value(claimsContextKey).(*security.StaffClaims)
	return claims
}
