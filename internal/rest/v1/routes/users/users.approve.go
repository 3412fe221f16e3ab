package users

import (
	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
)

type approve struct {
	Ctx global.Context
}

func newApprove(gCtx global.Context) rest.Route {
	return &approve{gCtx}
}

func (r *approve) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{user.id}/approve",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
			middleware.RequireRole(r.Ctx, model.UserRoleAdmin),
		},
	}
}

// Approve Application
// @Summary Approve Application
// @Description Promote an applicant account to the EMP role
// @Param user.id path string true "ID of the applicant"
// @Tags users
// @Produce json
// @Success 200 {object} model.User
// @Router /users/{user.id}/approve [post]
func (r *approve) Handler(ctx *rest.Ctx) rest.APIError {
	userID, err := ctx.UserValue("user.id").ObjectID()
	if err != nil {
		return errors.From(err)
	}

	user, err := r.Ctx.Inst().Mutate.ApproveApplication(ctx, userID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, user)
}
