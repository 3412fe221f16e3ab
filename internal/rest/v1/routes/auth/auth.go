package auth

import (
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/rest"
)

type Route struct {
	Ctx global.Context
}

func New(gCtx global.Context) rest.Route {
	return &Route{gCtx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/auth",
		Method: rest.GET,
		Children: []rest.Route{
			newRegister(r.Ctx),
			newLogin(r.Ctx),
			newLogout(r.Ctx),
		},
		Middleware: []rest.Middleware{},
	}
}

func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	return errors.ErrInvalidRequest().SetDetail("use the register or login routes")
}
