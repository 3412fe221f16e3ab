package prometheus

import (
	"github.com/medilink/api/internal/instance"
	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	Labels prometheus.Labels
}

type Instance struct {
	assignmentsIssued     prometheus.Counter
	assignmentsRejected   prometheus.Counter
	reservationsReclaimed prometheus.Counter
	eventsDelivered       prometheus.Counter
	eventsDropped         prometheus.Counter
	onlineUsers           prometheus.Gauge
}

func New(o Options) instance.Prometheus {
	return &Instance{
		assignmentsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "api_dispatch_assignments_issued_total",
			Help:        "Number of call sessions issued",
			ConstLabels: o.Labels,
		}),
		assignmentsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "api_dispatch_assignments_rejected_total",
			Help:        "Number of call requests rejected with no available EMP",
			ConstLabels: o.Labels,
		}),
		reservationsReclaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "api_dispatch_reservations_reclaimed_total",
			Help:        "Number of stuck reservations reverted by the lease sweep",
			ConstLabels: o.Labels,
		}),
		eventsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "api_events_delivered_total",
			Help:        "Number of events delivered to a live connection",
			ConstLabels: o.Labels,
		}),
		eventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "api_events_dropped_total",
			Help:        "Number of events dropped for absent or saturated connections",
			ConstLabels: o.Labels,
		}),
		onlineUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "api_presence_online_users",
			Help:        "Number of users with a registered connection",
			ConstLabels: o.Labels,
		}),
	}
}

func (m *Instance) Register(r prometheus.Registerer) {
	r.MustRegister(
		m.assignmentsIssued,
		m.assignmentsRejected,
		m.reservationsReclaimed,
		m.eventsDelivered,
		m.eventsDropped,
		m.onlineUsers,
	)
}

func (m *Instance) AssignmentsIssued() prometheus.Counter {
	return m.assignmentsIssued
}

func (m *Instance) AssignmentsRejected() prometheus.Counter {
	return m.assignmentsRejected
}

func (m *Instance) ReservationsReclaimed() prometheus.Counter {
	return m.reservationsReclaimed
}

func (m *Instance) EventsDelivered() prometheus.Counter {
	return m.eventsDelivered
}

func (m *Instance) EventsDropped() prometheus.Counter {
	return m.eventsDropped
}

func (m *Instance) OnlineUsers() prometheus.Gauge {
	return m.onlineUsers
}
