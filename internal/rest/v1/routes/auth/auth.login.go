package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/rest"
	"github.com/medilink/api/internal/svc/auth"
)

type login struct {
	Ctx global.Context
}

func newLogin(gCtx global.Context) rest.Route {
	return &login{gCtx}
}

func (r *login) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:        "/login",
		Method:     rest.POST,
		Children:   []rest.Route{},
		Middleware: []rest.Middleware{},
	}
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// Login
// @Summary Login
// @Description Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} auth.loginResponse
// @Router /auth/login [post]
func (r *login) Handler(ctx *rest.Ctx) rest.APIError {
	body := loginBody{}
	if err := ctx.BindJSON(&body); err != nil {
		return errors.From(err)
	}

	if body.Username == "" || body.Password == "" {
		return errors.ErrMissingField().SetFields(errors.Fields{"fields": []string{"username", "password"}})
	}

	user, err := r.Ctx.Inst().Query.UserByUsername(ctx, body.Username)
	if err != nil {
		// Do not reveal whether the username exists
		return errors.ErrLoginFailed()
	}

	if !r.Ctx.Inst().Auth.ComparePassword(user.PasswordHash, body.Password) {
		return errors.ErrLoginFailed()
	}

	now := time.Now()

	token, err := r.Ctx.Inst().Auth.SignJWT(&auth.JWTClaimUser{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour * 24)),
		},
	})
	if err != nil {
		return errors.ErrInternalServerError().SetDetail(err.Error())
	}

	return ctx.JSON(rest.OK, &loginResponse{
		User:  user,
		Token: token,
	})
}
