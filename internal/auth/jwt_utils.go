package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtKey signs session tokens. Override with SESSION_SECRET in .env;
// the fallback only exists so local dev works out of the box. Read
// lazily so godotenv has loaded before the first token is issued.
func jwtKey() []byte {
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("dev_only_invoice_session_secret")
}

// Claims is what a session token carries: just the session id. There
// are no users or roles here - the token only ties a browser to its
// own in-memory invoice.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed token for a session id.
func GenerateToken(sessionID string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour) // same as the session idle timeout

	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ValidateToken checks if a token is fake or expired.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
