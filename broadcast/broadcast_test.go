package broadcast

import (
	"net"
	"os"
	"testing"

	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/logger"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/session"
)

func TestMain(m *testing.M) {
	logger.InitNop()
	os.Exit(m.Run())
}

// MockConnection records sent messages for the network.Connection
// interface.
type MockConnection struct {
	sent   []string
	closed bool
}

func (m *MockConnection) Send(text string) error {
	m.sent = append(m.sent, text)
	return nil
}

func (m *MockConnection) ReadMessage() (string, error) { return "", nil }

func (m *MockConnection) Close() error {
	m.closed = true
	return nil
}

func (m *MockConnection) RemoteAddr() net.Addr { return &net.TCPAddr{} }

func setup() (*Broadcaster, map[string]*MockConnection) {
	manager := session.NewManager()
	conns := make(map[string]*MockConnection)
	for _, id := range []string{"a", "b", "c"} {
		conn := &MockConnection{}
		conns[id] = conn
		manager.Add(session.NewSession(id, "user_"+id, conn))
	}
	return NewBroadcaster(manager), conns
}

func TestUnicast(t *testing.T) {
	b, conns := setup()

	b.Unicast("b", "DRQfoo;bar")

	if len(conns["b"].sent) != 1 || conns["b"].sent[0] != "DRQfoo;bar" {
		t.Errorf("target received %v, want [DRQfoo;bar]", conns["b"].sent)
	}
	if len(conns["a"].sent) != 0 || len(conns["c"].sent) != 0 {
		t.Error("unicast must not reach other sessions")
	}
}

func TestUnicast_UnknownSession(t *testing.T) {
	b, conns := setup()

	b.Unicast("ghost", "MSGhi")

	for id, conn := range conns {
		if len(conn.sent) != 0 {
			t.Errorf("session %s received %v for an unknown target", id, conn.sent)
		}
	}
}

func TestMulticast_ExcludesNamedSession(t *testing.T) {
	b, conns := setup()

	b.Multicast("a", "GRQ")

	if len(conns["a"].sent) != 0 {
		t.Errorf("excluded session received %v", conns["a"].sent)
	}
	for _, id := range []string{"b", "c"} {
		if len(conns[id].sent) != 1 || conns[id].sent[0] != "GRQ" {
			t.Errorf("session %s received %v, want [GRQ]", id, conns[id].sent)
		}
	}
}

func TestBroadcast_ReachesEveryone(t *testing.T) {
	b, conns := setup()

	b.Broadcast("ERR")

	for id, conn := range conns {
		if len(conn.sent) != 1 || conn.sent[0] != "ERR" {
			t.Errorf("session %s received %v, want [ERR]", id, conn.sent)
		}
	}
}

func TestNotifyDisconnect_ReleasesSession(t *testing.T) {
	b, conns := setup()

	b.NotifyDisconnect("b")

	if !conns["b"].closed {
		t.Error("NotifyDisconnect should close the connection")
	}

	b.Broadcast("MSGstill here")
	if len(conns["b"].sent) != 0 {
		t.Errorf("removed session still received %v", conns["b"].sent)
	}
	if len(conns["a"].sent) != 1 || len(conns["c"].sent) != 1 {
		t.Error("remaining sessions should still receive broadcasts")
	}
}
