package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design-toolkit/api/colors"
)

func TestPaletteTokenRoundTrip(t *testing.T) {
	token, expiry, err := NewPaletteToken("s3cret", "studio-laptop", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	claims, err := ValidatePaletteToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "studio-laptop", claims.Subject)
	assert.Equal(t, JWT.PALETTE_SCOPE, claims.Scope)
	assert.NotEmpty(t, claims.ID)
}

func TestValidatePaletteTokenRejects(t *testing.T) {
	good, _, err := NewPaletteToken("s3cret", "a", time.Hour)
	require.NoError(t, err)

	expired, _, err := NewPaletteToken("s3cret", "a", -time.Minute)
	require.NoError(t, err)

	wrongScope, err := jwt.NewWithClaims(jwt.SigningMethodHS256, PaletteClaims{
		Scope:            "authentication",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	tests := map[string]struct {
		token  string
		secret string
	}{
		"wrong secret": {good, "other"},
		"expired":      {expired, "s3cret"},
		"wrong scope":  {wrongScope, "s3cret"},
		"garbage":      {"not.a.token", "s3cret"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ValidatePaletteToken(tt.token, tt.secret)
			assert.Error(t, err)
		})
	}
}

func TestNewColor(t *testing.T) {
	r, err := colors.Describe("#FF0000")
	require.NoError(t, err)

	c := NewColor(r)
	assert.Equal(t, ColorHex{Value: "#FF0000", Clean: "FF0000"}, c.Hex)
	assert.Equal(t, "rgb(255,0,0)", c.RGB.Value)
	assert.Equal(t, 1.0, c.RGB.Fraction.R)
	assert.Equal(t, "hsl(0,100%,50%)", c.HSL.Value)
	assert.Equal(t, ColorCMYK{C: 0, M: 100, Y: 100, K: 0, Value: "cmyk(0%,100%,100%,0%)"}, c.CMYK)
}
