package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const refreshType = "refresh"

type Claims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}

// Generate issues a signed HS256 access token for the user.
func Generate(userID string, expiration time.Duration, secret string) (string, error) {
	return sign(userID, "", expiration, secret)
}

// GenerateRefresh issues a refresh token. Refresh tokens carry a type
// discriminator so an access token cannot be replayed against the refresh
// endpoint.
func GenerateRefresh(userID string, expiration time.Duration, secret string) (string, error) {
	return sign(userID, refreshType, expiration, secret)
}

func sign(userID, tokenType string, expiration time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies an access token.
func Validate(tokenString, secret string) (*Claims, error) {
	claims, err := parse(tokenString, secret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType == refreshType {
		return nil, fmt.Errorf("refresh token used as access token")
	}
	return claims, nil
}

// ValidateRefresh parses and verifies a refresh token.
func ValidateRefresh(tokenString, secret string) (*Claims, error) {
	claims, err := parse(tokenString, secret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != refreshType {
		return nil, fmt.Errorf("not a refresh token")
	}
	return claims, nil
}

func parse(tokenString, secret string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
