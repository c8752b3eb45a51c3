package middleware

import (
	"context"
	"net/http"
	"strings"

	"smartleave/internal/auth"
	"smartleave/internal/domain/leave"
	"smartleave/internal/transport/http/api"
)

type ctxKey int

const ctxKeyUser ctxKey = iota

// UserContext is the authenticated identity placed in the request context.
type UserContext struct {
	UserID   string
	Username string
	Role     leave.Role
}

func (u UserContext) IsAdmin() bool {
	return u.Role == leave.RoleAdmin
}

// Auth parses a bearer token when present. Invalid or absent tokens pass
// through unauthenticated; enforcement lives in RequireAuth/RequireAdmin.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(parts[1], secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, UserContext{
				UserID:   claims.UserID,
				Username: claims.Username,
				Role:     leave.Role(claims.Role),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (UserContext, bool) {
	user, ok := ctx.Value(ctxKeyUser).(UserContext)
	return user, ok
}

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		if !user.IsAdmin() {
			api.Fail(w, http.StatusForbidden, "forbidden", "administrator role required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
