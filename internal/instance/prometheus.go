package instance

import "github.com/prometheus/client_golang/prometheus"

type Prometheus interface {
	Register(r prometheus.Registerer)

	AssignmentsIssued() prometheus.Counter
	AssignmentsRejected() prometheus.Counter
	ReservationsReclaimed() prometheus.Counter
	EventsDelivered() prometheus.Counter
	EventsDropped() prometheus.Counter
	OnlineUsers() prometheus.Gauge
}
