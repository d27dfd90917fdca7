// Package security implements admin credential handling: JWT sessions,
// password hashing, and the optional TOTP second factor.
package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims are the JWT claims carried by an admin session token.
type AdminClaims struct {
	AdminID string `json:"admin_id"` // Admin row id.
	jwt.RegisteredClaims
}

// NewAdminToken signs a session token for an admin.
func NewAdminToken(secret, adminID string, expiry time.Duration) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", fmt.Errorf("security: empty jwt secret")
	}
	now := time.Now().UTC()
	claims := AdminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, errSign := token.SignedString([]byte(secret))
	if errSign != nil {
		return "", fmt.Errorf("security: sign token: %w", errSign)
	}
	return signed, nil
}

// ParseAdminToken validates a session token and returns its claims.
func ParseAdminToken(secret, tokenString string) (*AdminClaims, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("security: empty jwt secret")
	}
	claims := &AdminClaims{}
	token, errParse := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if errParse != nil {
		return nil, fmt.Errorf("security: parse token: %w", errParse)
	}
	if !token.Valid || strings.TrimSpace(claims.AdminID) == "" {
		return nil, errors.New("security: invalid token")
	}
	return claims, nil
}
