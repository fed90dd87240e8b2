package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// tokenTTL is how long issued credentials stay valid.
const tokenTTL = 7 * 24 * time.Hour

// GenerateToken signs a credential carrying the user id and email.
func GenerateToken(secret []byte, userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
