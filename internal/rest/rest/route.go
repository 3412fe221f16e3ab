package rest

import (
	"github.com/fasthttp/router"
)

type Route interface {
	Config() RouteConfig
	Handler(ctx *Ctx) APIError
}

type Router = router.Router

type RouteConfig struct {
	URI        string
	Method     RouteMethod
	Children   []Route
	Middleware []Middleware
}

type RouteMethod string

const (
	GET     RouteMethod = "GET"
	POST    RouteMethod = "POST"
	PUT     RouteMethod = "PUT"
	PATCH   RouteMethod = "PATCH"
	DELETE  RouteMethod = "DELETE"
	OPTIONS RouteMethod = "OPTIONS"
)

type Middleware = func(ctx *Ctx) APIError

type APIErrorResponse struct {
	StatusCode HttpStatusCode         `json:"status_code"`
	Status     string                 `json:"status"`
	Error      string                 `json:"error"`
	ErrorCode  int                    `json:"error_code"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

type HttpStatusCode int

const (
	// 2xx Successful
	OK        HttpStatusCode = 200
	Created   HttpStatusCode = 201
	Accepted  HttpStatusCode = 202
	NoContent HttpStatusCode = 204

	// 3xx Redirection
	MovedPermanently HttpStatusCode = 301
	Found            HttpStatusCode = 302
	NotModified      HttpStatusCode = 304

	// 4xx Client Error
	BadRequest       HttpStatusCode = 400
	Unauthorized     HttpStatusCode = 401
	Forbidden        HttpStatusCode = 403
	NotFound         HttpStatusCode = 404
	MethodNotAllowed HttpStatusCode = 405
	Conflict         HttpStatusCode = 409
	TooManyRequests  HttpStatusCode = 429

	// 5xx Server Error
	InternalServerError HttpStatusCode = 500
	BadGateway          HttpStatusCode = 502
	ServiceUnavailable  HttpStatusCode = 503
)

func (c HttpStatusCode) String() string {
	switch c {
	case OK:
		return "OK"
	case Created:
		return "Created"
	case Accepted:
		return "Accepted"
	case NoContent:
		return "No Content"
	case MovedPermanently:
		return "Moved Permanently"
	case Found:
		return "Found"
	case NotModified:
		return "Not Modified"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case Conflict:
		return "Conflict"
	case TooManyRequests:
		return "Too Many Requests"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	default:
		return "Internal Server Error"
	}
}
