package calls

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
		URI:    "/calls",
		Method: rest.GET,
		Children: []rest.Route{
			newAvailability(r.Ctx),
			newInitiate(r.Ctx),
			newRelease(r.Ctx),
		},
		Middleware: []rest.Middleware{},
	}
}

// Dispatch Pool Status
// @Summary Dispatch Pool Status
// @Description The number of EMPs currently available for calls
// @Tags calls
// @Produce json
// @Success 200 {object} calls.PoolResponse
// @Router /calls [get]
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	records, err := r.Ctx.Inst().Availability.GetAvailable(ctx)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, &PoolResponse{
		Available: len(records),
	})
}

type PoolResponse struct {
	Available int `json:"available"`
}
