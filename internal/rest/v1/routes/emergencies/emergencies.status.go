package emergencies

import (
	"fmt"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
	"go.uber.org/zap"
)

type status struct {
	Ctx global.Context
}

func newStatus(gCtx global.Context) rest.Route {
	return &status{gCtx}
}

func (r *status) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{emergency.id}/status",
		Method:   rest.PUT,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
			middleware.RequireRole(r.Ctx, model.UserRoleEMP, model.UserRoleAdmin),
		},
	}
}

type statusBody struct {
	Status model.EmergencyStatus `json:"status"`
}

// Update Emergency Status
// @Summary Update Emergency Status
// @Description Move an emergency through its lifecycle and notify the reporter
// @Param emergency.id path string true "ID of the emergency"
// @Tags emergencies
// @Accept json
// @Produce json
// @Success 200 {object} model.Emergency
// @Router /emergencies/{emergency.id}/status [put]
func (r *status) Handler(ctx *rest.Ctx) rest.APIError {
	emergencyID, err := ctx.UserValue("emergency.id").ObjectID()
	if err != nil {
		return errors.From(err)
	}

	body := statusBody{}
	if err := ctx.BindJSON(&body); err != nil {
		return errors.From(err)
	}

	switch body.Status {
	case model.EmergencyStatusPending,
		model.EmergencyStatusDispatched,
		model.EmergencyStatusResolved,
		model.EmergencyStatusCancelled:
	default:
		return errors.ErrValidation().SetDetail("unknown status %q", body.Status)
	}

	emergency, err := r.Ctx.Inst().Mutate.UpdateEmergencyStatus(ctx, emergencyID, body.Status)
	if err != nil {
		return errors.From(err)
	}

	if smsErr := r.Ctx.Inst().Gateway.SendSMS(ctx, emergency.Phone, fmt.Sprintf(
		"Update on your %s emergency report: status is now %s.",
		emergency.Type, emergency.Status,
	)); smsErr != nil {
		zap.S().Errorw("failed to send emergency status sms",
			"error", smsErr,
			"emergency_id", emergency.ID,
			"status", emergency.Status,
		)
	}

	return ctx.JSON(rest.OK, emergency)
}
