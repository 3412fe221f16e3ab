package auth

import (
	"github.com/medilink/api/internal/instance"
	"golang.org/x/crypto/bcrypt"
)

type Options struct {
	JWTSecret string
}

type authorizer struct {
	JWTSecret string
}

func New(opt Options) instance.Auth {
	return &authorizer{
		JWTSecret: opt.JWTSecret,
	}
}

func (a *authorizer) HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(b), err
}

func (a *authorizer) ComparePassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
