package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var JWT = struct {
	PALETTE_COOKIE_NAME string
	PALETTE_SCOPE       string
}{
	PALETTE_COOKIE_NAME: "palette_token",
	PALETTE_SCOPE:       "palette:generate",
}

// PaletteClaims authorize calls to the AI palette endpoint.
type PaletteClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// NewPaletteToken signs an HS256 token for subject that expires after ttl.
func NewPaletteToken(secret, subject string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiry := now.Add(ttl)

	claims := PaletteClaims{
		Scope: JWT.PALETTE_SCOPE,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error signing palette token %v", err)
	}
	return signed, expiry, nil
}

func ValidatePaletteToken(tokenString string, secret string) (*PaletteClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PaletteClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*PaletteClaims)
	if !ok || claims.Scope != JWT.PALETTE_SCOPE {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
