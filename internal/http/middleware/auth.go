package middleware

import (
	"context"
	"net/http"
	"strings"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
	"jobzee/internal/http/response"
	"jobzee/internal/security"
)

type contextKey string

const (
	ContextAccountIDKey contextKey = "account_id"
	ContextRoleKey      contextKey = "role"
	ContextEmailKey     contextKey = "email"
)

type AuthMiddleware struct {
	tokens *security.TokenProvider
}

func NewAuthMiddleware(tokens *security.TokenProvider) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		claims, err := m.tokens.Parse(parts[1])
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid token", err))
			return
		}
		accountID, err := common.ParseUUID(claims.AccountID)
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid account id", err))
			return
		}
		ctx := context.WithValue(r.Context(), ContextAccountIDKey, accountID)
		ctx = context.WithValue(ctx, ContextRoleKey, claims.Role)
		ctx = context.WithValue(ctx, ContextEmailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole admits the request only when the authenticated role is one of
// the given roles.
func RequireRole(roles ...account.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(ContextRoleKey).(account.Role)
			if !ok || role == "" {
				response.Error(w, common.NewError(common.CodeForbidden, "role not found", nil))
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
		})
	}
}

func AccountIDFromContext(ctx context.Context) (common.UUID, bool) {
	id, ok := ctx.Value(ContextAccountIDKey).(common.UUID)
	return id, ok
}

func RoleFromContext(ctx context.Context) (account.Role, bool) {
	role, ok := ctx.Value(ContextRoleKey).(account.Role)
	return role, ok
}
