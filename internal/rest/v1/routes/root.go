package routes

import (
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/rest"
	"github.com/medilink/api/internal/rest/v1/routes/auth"
	"github.com/medilink/api/internal/rest/v1/routes/calls"
	"github.com/medilink/api/internal/rest/v1/routes/emergencies"
	"github.com/medilink/api/internal/rest/v1/routes/messages"
	"github.com/medilink/api/internal/rest/v1/routes/users"
)

type Route struct {
	Ctx global.Context
}

func New(gCtx global.Context) rest.Route {
	return &Route{gCtx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/v1" + r.Ctx.Config().Http.VersionSuffix,
		Method: rest.GET,
		Children: []rest.Route{
			auth.New(r.Ctx),
			calls.New(r.Ctx),
			users.New(r.Ctx),
			emergencies.New(r.Ctx),
			messages.New(r.Ctx),
		},
		Middleware: []rest.Middleware{},
	}
}

func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	return ctx.JSON(rest.OK, &Response{
		Online: true,
	})
}

type Response struct {
	Online bool `json:"online"`
}
