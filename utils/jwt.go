package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long a signed session stays valid.
const SessionTTL = 12 * time.Hour

// GenerateSessionToken signs a session for the given user.
func GenerateSessionToken(userID uint, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(SessionTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken verifies the signature and expiry and returns
// the user id the session identifies.
func ValidateSessionToken(tokenString, secret string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0, errors.New("invalid or missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return 0, errors.New("token has expired")
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, errors.New("id not found or invalid type")
	}
	return uint(id), nil
}
