package instance

import "github.com/golang-jwt/jwt/v4"

type Auth interface {
	SignJWT(claim jwt.Claims) (string, error)
	VerifyJWT(token string, out jwt.Claims) (*jwt.Token, error)
	HashPassword(password string) (string, error)
	ComparePassword(hash string, password string) bool
}
