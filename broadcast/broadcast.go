// broadcast/broadcast.go
package broadcast

import (
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/logger"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/session"
)

// Broadcaster delivers coordinator output over the session registry.
// It implements game.Outbound. Send failures are logged and skipped, a
// broken connection surfaces to the coordinator through its own read
// loop, not through delivery errors.
type Broadcaster struct {
	sessions *session.Manager
}

func NewBroadcaster(sessions *session.Manager) *Broadcaster {
	return &Broadcaster{sessions: sessions}
}

func (b *Broadcaster) Unicast(id, text string) {
	s, exists := b.sessions.Get(id)
	if !exists {
		logger.Log.Warnf("unicast to unknown session %s dropped", id)
		return
	}
	if err := s.Send(text); err != nil {
		logger.Log.Errorf("unicast to %s failed: %v", id, err)
	}
}

func (b *Broadcaster) Multicast(excludeID, text string) {
	for _, s := range b.sessions.All() {
		if s.ID == excludeID {
			continue
		}
		if err := s.Send(text); err != nil {
			logger.Log.Errorf("multicast to %s failed: %v", s.ID, err)
			continue
		}
	}
}

func (b *Broadcaster) Broadcast(text string) {
	for _, s := range b.sessions.All() {
		if err := s.Send(text); err != nil {
			logger.Log.Errorf("broadcast to %s failed: %v", s.ID, err)
			continue
		}
	}
}

// NotifyDisconnect releases the session once the coordinator has
// finished handling the crash.
func (b *Broadcaster) NotifyDisconnect(id string) {
	if s, exists := b.sessions.Get(id); exists {
		s.Close()
	}
	b.sessions.Remove(id)
}
