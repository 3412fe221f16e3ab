package events

import (
	"github.com/medilink/api/internal/instance"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EventPayload is the wire envelope for every server-to-client event.
type EventPayload struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type Options struct {
	Presence   instance.Presence
	Prometheus instance.Prometheus
}

type fanout struct {
	presence   instance.Presence
	prometheus instance.Prometheus
}

func New(opt Options) instance.Events {
	return &fanout{
		presence:   opt.Presence,
		prometheus: opt.Prometheus,
	}
}

func (f *fanout) EmitTo(userID string, event string, data interface{}) bool {
	conn, ok := f.presence.Lookup(userID)
	if !ok {
		// At-most-once: no queueing, no retry. Durable content is
		// redelivered by the next fetch, ephemeral content is stale
		// by the time the user returns anyway.
		f.countDropped()

		return false
	}

	payload, err := json.Marshal(EventPayload{Event: event, Data: data})
	if err != nil {
		zap.S().Errorw("failed to encode event",
			"event", event,
			"error", err,
		)

		return false
	}

	if !conn.Write(payload) {
		f.countDropped()

		return false
	}

	f.countDelivered()

	return true
}

func (f *fanout) Broadcast(event string, data interface{}) {
	payload, err := json.Marshal(EventPayload{Event: event, Data: data})
	if err != nil {
		zap.S().Errorw("failed to encode event",
			"event", event,
			"error", err,
		)

		return
	}

	f.presence.Each(func(entry instance.PresenceEntry) {
		if entry.Connection.Write(payload) {
			f.countDelivered()
		} else {
			f.countDropped()
		}
	})
}

func (f *fanout) countDelivered() {
	if f.prometheus != nil {
		f.prometheus.EventsDelivered().Inc()
	}
}

func (f *fanout) countDropped() {
	if f.prometheus != nil {
		f.prometheus.EventsDropped().Inc()
	}
}
