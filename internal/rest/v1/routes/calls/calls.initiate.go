package calls

import (
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
)

type initiate struct {
	Ctx global.Context
}

func newInitiate(gCtx global.Context) rest.Route {
	return &initiate{gCtx}
}

func (r *initiate) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/initiate",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type initiateBody struct {
	UserID string `json:"userId"`
}

type initiateResponse struct {
	EmpID    string `json:"empId"`
	RoomName string `json:"roomName"`
	Token    string `json:"token"`
}

// Initiate Call
// @Summary Initiate Call
// @Description Reserve the longest-idle available EMP and mint a call session
// @Tags calls
// @Accept json
// @Produce json
// @Success 200 {object} calls.initiateResponse
// @Router /calls/initiate [post]
func (r *initiate) Handler(ctx *rest.Ctx) rest.APIError {
	body := initiateBody{}
	if err := ctx.BindJSON(&body); err != nil {
		return errors.From(err)
	}

	requesterID := body.UserID
	if requesterID == "" {
		actor, _ := ctx.GetActor()
		requesterID = actor.ID.Hex()
	}

	session, err := r.Ctx.Inst().Dispatch.Assign(ctx, requesterID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, &initiateResponse{
		EmpID:    session.EmpID.Hex(),
		RoomName: session.RoomName,
		Token:    session.Token,
	})
}
