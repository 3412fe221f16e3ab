package calls

import (
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type release struct {
	Ctx global.Context
}

func newRelease(gCtx global.Context) rest.Route {
	return &release{gCtx}
}

func (r *release) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/release",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type releaseBody struct {
	EmpID string `json:"empId"`
}

// Release Call
// @Summary Release Call
// @Description Return a reserved EMP to the dispatch pool after a call ends
// @Tags calls
// @Accept json
// @Produce json
// @Success 200 {object} calls.releaseResponse
// @Router /calls/release [post]
func (r *release) Handler(ctx *rest.Ctx) rest.APIError {
	body := releaseBody{}
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

	if err := r.Ctx.Inst().Dispatch.Release(ctx, empID); err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, &releaseResponse{Released: true})
}

type releaseResponse struct {
	Released bool `json:"released"`
}
