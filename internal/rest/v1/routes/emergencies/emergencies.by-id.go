package emergencies

import (
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
)

type emergencyRoute struct {
	Ctx global.Context
}

func newEmergency(gCtx global.Context) rest.Route {
	return &emergencyRoute{gCtx}
}

func (r *emergencyRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{emergency.id}",
		Method:   rest.GET,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// Get Emergency
// @Summary Get Emergency
// @Description Get an emergency report by ID
// @Param emergency.id path string true "ID of the emergency"
// @Tags emergencies
// @Produce json
// @Success 200 {object} model.Emergency
// @Router /emergencies/{emergency.id} [get]
func (r *emergencyRoute) Handler(ctx *rest.Ctx) rest.APIError {
	emergencyID, err := ctx.UserValue("emergency.id").ObjectID()
	if err != nil {
		return errors.From(err)
	}

	emergency, err := r.Ctx.Inst().Query.EmergencyByID(ctx, emergencyID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, emergency)
}
