package users

import (
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
)

type userRoute struct {
	Ctx global.Context
}

func newUser(gCtx global.Context) rest.Route {
	return &userRoute{gCtx}
}

func (r *userRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{user.id}",
		Method:   rest.GET,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// Get User
// @Summary Get User
// @Description Get user by ID
// @Param user.id path string true "ID of the user"
// @Tags users
// @Produce json
// @Success 200 {object} model.User
// @Router /users/{user.id} [get]
func (r *userRoute) Handler(ctx *rest.Ctx) rest.APIError {
	userID, err := ctx.UserValue("user.id").ObjectID()
	if err != nil {
		return errors.From(err)
	}

	user, err := r.Ctx.Inst().Query.UserByID(ctx, userID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, user)
}
