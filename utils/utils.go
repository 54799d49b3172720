package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"pipetrak/models"
)

// ErrorResponse writes the common error body and aborts the handler chain.
func ErrorResponse(c *gin.Context, status int, code, message, details string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// Identity is the caller as asserted by a verified bearer token.
type Identity struct {
	UserID string
	Role   string
}

// GenerateJWT signs an access token carrying the user id ("sub") and role.
func GenerateJWT(secret, userID, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"type": "access",
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateJWT parses and verifies a token and extracts the caller identity.
func ValidateJWT(secret, tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("token parsing error: %w", err)
	}
	if !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid token claims")
	}
	if t, _ := claims["type"].(string); t != "" && t != "access" {
		return Identity{}, fmt.Errorf("unexpected token type %q", t)
	}
	sub, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(sub) == "" {
		return Identity{}, errors.New("token has no subject")
	}
	role, _ := claims["role"].(string)
	return Identity{UserID: sub, Role: role}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}
