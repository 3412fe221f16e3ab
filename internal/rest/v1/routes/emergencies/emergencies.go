package emergencies

import (
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
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
		URI:    "/emergencies",
		Method: rest.GET,
		Children: []rest.Route{
			newCreate(r.Ctx),
			newEmergency(r.Ctx),
			newStatus(r.Ctx),
		},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// List Emergencies
// @Summary List Emergencies
// @Description List all reported emergencies, newest first
// @Tags emergencies
// @Produce json
// @Success 200 {array} model.Emergency
// @Router /emergencies [get]
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	emergencies, err := r.Ctx.Inst().Query.Emergencies(ctx)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, emergencies)
}
