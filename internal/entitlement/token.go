// Package entitlement decides whether the user has unlocked unrestricted
// use. Premium state arrives as a signed entitlement token; the token is
// verified locally and kept in the key-value store so it survives restarts.
package entitlement

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/qrkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the premium flag.
type Claims struct {
	jwt.RegisteredClaims
	Premium bool `json:"premium"`
}

// GenerateToken signs a premium entitlement token valid for the given
// duration. Used by the purchase backend and by tests.
func GenerateToken(secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Premium: true,
	})

	return token.SignedString(secretKey)
}

// VerifyToken checks signature, expiry and the premium flag. It returns
// common.ErrTokenExpired for an expired token and common.ErrInvalidToken for
// anything else that fails verification.
func VerifyToken(tokenString string, secretKey []byte) error {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrInvalidToken
	}

	if !token.Valid || !claims.Premium {
		return common.ErrInvalidToken
	}

	return nil
}
