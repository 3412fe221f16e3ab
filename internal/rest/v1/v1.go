package v1

import (
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/rest"
	"github.com/medilink/api/internal/rest/v1/routes"
)

func API(gCtx global.Context, router *rest.Router) rest.Route {
	return routes.New(gCtx)
}
