package users

import (
	"github.com/medilink/api/data/model"
	"github.com/medilink/api/data/query"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
	"github.com/medilink/api/internal/utils"
)

type Route struct {
	Ctx global.Context
}

func New(gCtx global.Context) rest.Route {
	return &Route{gCtx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/users",
		Method: rest.GET,
		Children: []rest.Route{
			newUser(r.Ctx),
			newUserUpdate(r.Ctx),
			newApprove(r.Ctx),
		},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// List Users
// @Summary List Users
// @Description List users, filterable by role, specialization and status
// @Tags users
// @Produce json
// @Param role query string false "filter by role"
// @Param specialization query string false "filter by EMP specialization"
// @Param status query string false "filter by availability status"
// @Param page query int false "page number"
// @Success 200 {array} model.User
// @Router /users [get]
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	args := ctx.QueryArgs()

	limit := args.GetUintOrZero("limit")
	maxPage := r.Ctx.Config().Limits.MaxPage
	if maxPage == 0 {
		maxPage = 100
	}

	if limit == 0 || limit > maxPage {
		limit = maxPage
	}

	users, err := r.Ctx.Inst().Query.Users(ctx, query.UserFilter{
		Role:               model.UserRole(utils.B2S(args.Peek("role"))),
		Specialization:     utils.B2S(args.Peek("specialization")),
		AvailabilityStatus: utils.B2S(args.Peek("status")),
		Page:               args.GetUintOrZero("page"),
		Limit:              limit,
	})
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, users)
}
