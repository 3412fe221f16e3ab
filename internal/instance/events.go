package instance

type Events interface {
	// EmitTo delivers an event to userID's live connection, if any.
	// Absent or saturated connections drop the event; delivery is
	// at-most-once and best-effort.
	EmitTo(userID string, event string, data interface{}) bool

	// Broadcast delivers an event to every registered connection.
	Broadcast(event string, data interface{})
}
