package auth

import (
	"strings"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/rest"
)

type register struct {
	Ctx global.Context
}

func newRegister(gCtx global.Context) rest.Route {
	return &register{gCtx}
}

func (r *register) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:        "/register",
		Method:     rest.POST,
		Children:   []rest.Route{},
		Middleware: []rest.Middleware{},
	}
}

type registerBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Register
// @Summary Register
// @Description Create a new account. New accounts start as applicants
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} model.User
// @Router /auth/register [post]
func (r *register) Handler(ctx *rest.Ctx) rest.APIError {
	body := registerBody{}
	if err := ctx.BindJSON(&body); err != nil {
		return errors.From(err)
	}

	body.Username = strings.TrimSpace(body.Username)
	body.Email = strings.TrimSpace(strings.ToLower(body.Email))

	switch {
	case body.Username == "":
		return errors.ErrMissingField().SetFields(errors.Fields{"field": "username"})
	case body.Email == "" || !strings.Contains(body.Email, "@"):
		return errors.ErrValidation().SetDetail("a valid email is required")
	case len(body.Password) < 8:
		return errors.ErrValidation().SetDetail("password must be at least 8 characters")
	}

	hash, err := r.Ctx.Inst().Auth.HashPassword(body.Password)
	if err != nil {
		return errors.ErrInternalServerError().SetDetail(err.Error())
	}

	user, err := r.Ctx.Inst().Mutate.CreateUser(ctx, model.User{
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: hash,
		Phone:        body.Phone,
	})
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.Created, user)
}
