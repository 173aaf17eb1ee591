package game

// Outbound is the delivery contract the coordinator depends on. Calls
// are fire and forget; the transport layer is expected to queue or drop
// internally and never block the caller.
type Outbound interface {
	// Unicast delivers to exactly one connection.
	Unicast(id, text string)
	// Multicast delivers to all connections except the named one.
	Multicast(excludeID, text string)
	// Broadcast delivers to all connections.
	Broadcast(text string)
	// NotifyDisconnect tells the transport the coordinator is done with
	// a crashed connection so it can release its resources.
	NotifyDisconnect(id string)
}

// Recorder receives counters for coordinator-internal events. The
// monitor package implements it; a no-op recorder is used when no
// monitoring is wired in.
type Recorder interface {
	IncProtocolErrors()
	IncSessionResets()
	IncRoundsStarted()
}

type nopRecorder struct{}

func (nopRecorder) IncProtocolErrors() {}
func (nopRecorder) IncSessionResets()  {}
func (nopRecorder) IncRoundsStarted()  {}
