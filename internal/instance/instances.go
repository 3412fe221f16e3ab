package instance

import (
	"github.com/medilink/api/data/mutate"
	"github.com/medilink/api/data/query"
)

type Instances struct {
	Mongo        Mongo
	Auth         Auth
	Prometheus   Prometheus
	Presence     Presence
	Availability Availability
	Dispatch     Dispatch
	Events       Events
	Gateway      Gateway

	Query  *query.Query
	Mutate *mutate.Mutate
}
