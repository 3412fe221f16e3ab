package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/medilink/api/internal/utils"
)

func (a *authorizer) SignJWT(claim jwt.Claims) (string, error) {
	// Generate an unsigned token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claim)

	// Sign the token
	tokenStr, err := token.SignedString(utils.S2B(a.JWTSecret))

	return tokenStr, err
}

type JWTClaimUser struct {
	UserID   string `json:"u"`
	Username string `json:"n"`
	Role     string `json:"r"`

	jwt.RegisteredClaims
}

// JWTClaimCallSession grants access to a single call room. The identity and
// room bind the token to one session; it is not valid for any other room.
type JWTClaimCallSession struct {
	Identity string `json:"identity"`
	EmpID    string `json:"emp"`
	Room     string `json:"room"`

	jwt.RegisteredClaims
}

func (a *authorizer) VerifyJWT(token string, out jwt.Claims) (*jwt.Token, error) {
	result, err := jwt.ParseWithClaims(
		token,
		out,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("bad jwt signing method, expected HMAC but got %v", t.Header["alg"])
			}

			return utils.S2B(a.JWTSecret), nil
		},
	)

	return result, err
}
