package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"interview_quiz/internal/common"
	"interview_quiz/internal/common/security"
	"interview_quiz/internal/domain/model"
	"interview_quiz/internal/platform/cache"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey      contextKey = "userID"
	UserNameCtxKey    contextKey = "userName"
	UserRoleCtxKey    contextKey = "userRole"
	TokenIDCtxKey     contextKey = "tokenID"
	TokenExpiryCtxKey contextKey = "tokenExpiry"
)

// Authenticator rebuilds the session from the verified token and attaches it
// to the request context. Missing, invalid, expired, and revoked tokens are
// all treated as unauthenticated.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil {
			if strings.Contains(err.Error(), "token not found") || token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			} else {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token: "+err.Error())
			}
			return
		}

		if token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		userID, err := security.GetUserIDFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		userName, err := security.GetUserNameFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		userRole, err := security.GetUserRoleFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		tokenID, err := security.GetTokenIDFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		expiry, err := security.GetExpiryFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}

		revoked, err := cache.IsTokenRevoked(r.Context(), tokenID)
		if err != nil {
			log.Printf("Token revocation check failed: %v", err)
			common.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if revoked {
			common.RespondWithError(w, http.StatusUnauthorized, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, UserNameCtxKey, userName)
		ctx = context.WithValue(ctx, UserRoleCtxKey, userRole)
		ctx = context.WithValue(ctx, TokenIDCtxKey, tokenID)
		ctx = context.WithValue(ctx, TokenExpiryCtxKey, expiry)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly rejects non-admin callers with 401, indistinguishable from being
// unauthenticated, so the admin surface leaks nothing about itself.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetUserRoleFromContext(r.Context())
		if !ok || role != model.RoleAdmin {
			common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

func GetUserNameFromContext(ctx context.Context) (string, bool) {
	userName, ok := ctx.Value(UserNameCtxKey).(string)
	return userName, ok
}

func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	userRole, ok := ctx.Value(UserRoleCtxKey).(string)
	return userRole, ok
}

func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDCtxKey).(string)
	return tokenID, ok
}

func GetTokenExpiryFromContext(ctx context.Context) (time.Time, bool) {
	expiry, ok := ctx.Value(TokenExpiryCtxKey).(time.Time)
	return expiry, ok
}
