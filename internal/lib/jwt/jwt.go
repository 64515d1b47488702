package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewModeratorToken выпускает HS256-токен для модераторского API.
// Проверку выполняет echo-jwt middleware с тем же ключом.
func NewModeratorToken(moderator string, signingKey []byte, duration time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = moderator
	claims["role"] = "moderator"
	claims["exp"] = time.Now().Add(duration).Unix()

	tokenString, err := token.SignedString(signingKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
