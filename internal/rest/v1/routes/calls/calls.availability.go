package calls

import (
	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type availability struct {
	Ctx global.Context
}

func newAvailability(gCtx global.Context) rest.Route {
	return &availability{gCtx}
}

func (r *availability) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/availability",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type availabilityBody struct {
	EmpID       string `json:"empId"`
	IsAvailable bool   `json:"isAvailable"`
}

// Set Availability
// @Summary Set Availability
// @Description Flag an EMP as available or unavailable for dispatch
// @Tags calls
// @Accept json
// @Produce json
// @Success 200 {object} model.AvailabilityRecord
// @Router /calls/availability [post]
func (r *availability) Handler(ctx *rest.Ctx) rest.APIError {
	body := availabilityBody{}
	if err := ctx.BindJSON(&body); err != nil {
		return errors.From(err)
	}

	if body.EmpID == "" {
		return errors.ErrMissingField().SetFields(errors.Fields{"field": "empId"})
	}

	empID, err := primitive.ObjectIDFromHex(body.EmpID)
	if err != nil {
		return errors.ErrBadObjectID().SetDetail(err.Error())
	}

	actor, _ := ctx.GetActor()
	if actor.ID != empID && actor.Role != model.UserRoleAdmin {
		return errors.ErrInsufficientRole().SetDetail("cannot change another EMP's availability")
	}

	record, err := r.Ctx.Inst().Availability.SetAvailability(ctx, empID, body.IsAvailable)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, record)
}
