package security

import (
	"errors"
	"time"

	"interview_quiz/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateToken issues a signed session token carrying the user identity and
// role. The jti claim identifies the token for revocation on logout.
func GenerateToken(userID, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"name":    name,
		"role":    role,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(config.AppConfig.JWTExp).Unix(),
		"iat":     time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// Helper functions to extract claims, used in middleware and handlers.
func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetUserNameFromClaims(claims jwt.MapClaims) (string, error) {
	name, ok := claims["name"].(string)
	if !ok {
		return "", errors.New("name claim is missing or not a string")
	}
	return name, nil
}

func GetUserRoleFromClaims(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}

func GetTokenIDFromClaims(claims jwt.MapClaims) (string, error) {
	jti, ok := claims["jti"].(string)
	if !ok {
		return "", errors.New("jti claim is missing or not a string")
	}
	return jti, nil
}

// GetExpiryFromClaims returns the token expiry. jwtauth surfaces exp as
// time.Time after verification, but a raw numeric claim is handled too.
func GetExpiryFromClaims(claims jwt.MapClaims) (time.Time, error) {
	switch exp := claims["exp"].(type) {
	case time.Time:
		return exp, nil
	case float64:
		return time.Unix(int64(exp), 0), nil
	case int64:
		return time.Unix(exp, 0), nil
	default:
		return time.Time{}, errors.New("exp claim is missing or has an unexpected type")
	}
}
