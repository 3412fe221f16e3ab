package emergencies

import (
	"fmt"
	"strings"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/rest"
	"go.uber.org/zap"
)

type create struct {
	Ctx global.Context
}

func newCreate(gCtx global.Context) rest.Route {
	return &create{gCtx}
}

func (r *create) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:        "",
		Method:     rest.POST,
		Children:   []rest.Route{},
		Middleware: []rest.Middleware{},
	}
}

type createBody struct {
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Report Emergency
// @Summary Report Emergency
// @Description File a new emergency report. No authentication required
// @Tags emergencies
// @Accept json
// @Produce json
// @Success 201 {object} model.Emergency
// @Router /emergencies [post]
func (r *create) Handler(ctx *rest.Ctx) rest.APIError {
	body := createBody{}
	if err := ctx.BindJSON(&body); err != nil {
		return errors.From(err)
	}

	body.Type = strings.TrimSpace(body.Type)
	body.Name = strings.TrimSpace(body.Name)

	switch {
	case body.Type == "":
		return errors.ErrMissingField().SetFields(errors.Fields{"field": "type"})
	case body.Name == "":
		return errors.ErrMissingField().SetFields(errors.Fields{"field": "name"})
	case body.Phone == "":
		return errors.ErrMissingField().SetFields(errors.Fields{"field": "phone"})
	}

	emergency, err := r.Ctx.Inst().Mutate.CreateEmergency(ctx, model.Emergency{
		Type:      body.Type,
		Name:      body.Name,
		Phone:     body.Phone,
		Email:     body.Email,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	})
	if err != nil {
		return errors.From(err)
	}

	// Confirmation SMS is best-effort. A gateway outage must never fail
	// the report itself.
	if smsErr := r.Ctx.Inst().Gateway.SendSMS(ctx, emergency.Phone, fmt.Sprintf(
		"Your %s emergency report has been received. A responder will contact you shortly.",
		emergency.Type,
	)); smsErr != nil {
		zap.S().Errorw("failed to send emergency confirmation sms",
			"error", smsErr,
			"emergency_id", emergency.ID,
		)
	}

	return ctx.JSON(rest.Created, emergency)
}
