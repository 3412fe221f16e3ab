package rest

import (
	"encoding/json"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"github.com/valyala/fasthttp"
)

type Ctx struct {
	*fasthttp.RequestCtx
}

type APIError = errors.APIError

func (c *Ctx) JSON(status HttpStatusCode, v interface{}) APIError {
	b, err := json.Marshal(v)
	if err != nil {
		c.SetStatusCode(InternalServerError)
		return errors.ErrInternalServerError().
			SetDetail("JSON Parsing Failed").
			SetFields(errors.Fields{"JSON_ERROR": err.Error()})
	}

	c.SetStatusCode(status)
	c.SetContentType("application/json")
	c.SetBody(b)
	return nil
}

// BindJSON decodes the request body into v.
func (c *Ctx) BindJSON(v interface{}) APIError {
	if err := json.Unmarshal(c.Request.Body(), v); err != nil {
		return errors.ErrInvalidRequest().SetDetail("invalid request body: %s", err.Error())
	}

	return nil
}

func (c *Ctx) SetStatusCode(code HttpStatusCode) {
	c.RequestCtx.SetStatusCode(int(code))
}

func (c *Ctx) StatusCode() HttpStatusCode {
	return HttpStatusCode(c.RequestCtx.Response.StatusCode())
}

// Set the current authenticated user
func (c *Ctx) SetActor(u model.User) {
	c.SetUserValue(string(AuthUserKey), u)
}

// Get the current authenticated user
func (c *Ctx) GetActor() (model.User, bool) {
	switch v := c.RequestCtx.UserValue(string(AuthUserKey)).(type) {
	case model.User:
		return v, true
	default:
		return model.User{}, false
	}
}
