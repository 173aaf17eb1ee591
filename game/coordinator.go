package game

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/logger"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/protocol"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/timer"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/words"
)

var ErrIllegalPlayerState = errors.New("player is in an illegal state")

// maskRune is what guessers see in place of every character of the
// chosen word.
const maskRune = "_"

// Settings carries the tunables of a session.
type Settings struct {
	// OfferCount is how many distinct words the drawer may choose from.
	OfferCount int
	// NegotiationTimeout bounds every phase that waits on client
	// acknowledgements. On expiry the session behaves as if a NACK had
	// arrived: ERROR broadcast, full reset. Zero disables the deadline.
	NegotiationTimeout time.Duration
	// Rand drives drawer selection and word offers. Defaults to a
	// time-seeded source.
	Rand *rand.Rand
	// Stats receives internal event counters. Optional.
	Stats Recorder
}

// Coordinator is the session state machine. One coordinator instance
// runs exactly one game session.
//
// Every structured command is a read-modify-write over the shared
// player map, so a single session-wide mutex is held from the mutation
// of the acking player through the aggregate barrier check and any
// transition the barrier triggers. That is what makes the two barriers
// (role assignment, reveal) fire exactly once even when the last
// required acks arrive simultaneously on different connections.
type Coordinator struct {
	mu     sync.Mutex
	out    Outbound
	source *words.Source
	rnd    *rand.Rand
	stats  Recorder

	offerCount int
	timeout    time.Duration
	timers     *timer.Manager

	players        map[string]*Player
	choosableWords []string
	chosenWord     string

	// generation invalidates phase deadlines: it is bumped whenever a
	// deadline is armed or the session resets, so an expiry scheduled
	// for an earlier phase can never fire into a later one.
	generation uint64
	deadlineID int64
}

func NewCoordinator(out Outbound, source *words.Source, settings Settings) *Coordinator {
	if settings.OfferCount <= 0 {
		settings.OfferCount = 3
	}
	if settings.Rand == nil {
		settings.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if settings.Stats == nil {
		settings.Stats = nopRecorder{}
	}
	return &Coordinator{
		out:        out,
		source:     source,
		rnd:        settings.Rand,
		stats:      settings.Stats,
		offerCount: settings.OfferCount,
		timeout:    settings.NegotiationTimeout,
		timers:     timer.NewManager(),
		players:    make(map[string]*Player),
	}
}

// Close stops the coordinator's deadline timers.
func (c *Coordinator) Close() {
	c.timers.Stop()
}

// OnConnect registers a new player in the idle state.
func (c *Coordinator) OnConnect(id, username string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger.Log.Infof("new player created: %s (%s)", id, username)
	c.players[id] = NewPlayer(id, username)
}

// OnDisconnect removes the player, tells everyone else the session
// failed and falls back to the lobby. The transport is notified last so
// it can release the connection.
func (c *Coordinator) OnDisconnect(id string) {
	c.mu.Lock()
	logger.Log.Errorf("player removed: %s", id)
	delete(c.players, id)
	c.out.Broadcast(protocol.Compose(protocol.CmdError, ""))
	c.resetLocked()
	c.mu.Unlock()

	c.out.NotifyDisconnect(id)
}

// OnMessage parses one raw wire message and dispatches it. Parse
// failures are per-message: logged, dropped, session untouched.
func (c *Coordinator) OnMessage(id, raw string) {
	cmd, payload, err := protocol.Parse(raw)
	if err != nil {
		logger.Log.Errorf("unrecognizable command received from %s: %q", id, raw)
		c.stats.IncProtocolErrors()
		return
	}

	switch cmd {
	case protocol.CmdMessage, protocol.CmdClear, protocol.CmdDrawing:
		// Opaque relays, forwarded to everyone but the sender in any
		// phase. No game state is touched.
		c.out.Multicast(id, raw)

	case protocol.CmdStartGameRequest:
		c.handleStartGameRequest(id)

	case protocol.CmdStartGameAck:
		c.handleStartGameAck(id)

	case protocol.CmdStartGameNack:
		logger.Log.Errorf("player %s has not acknowledged the game start", id)
		c.fail()

	case protocol.CmdDrawerAck:
		c.handleDrawerAck(id, payload)

	case protocol.CmdRoundStartAck:
		c.handleRoundStartAck(id)

	case protocol.CmdRoundStartNack:
		logger.Log.Errorf("player %s has not acknowledged the round start", id)
		c.fail()

	default:
		// Outbound-only notification tags have no meaning inbound.
		logger.Log.Warnf("ignoring outbound-only command %s from %s", cmd, id)
	}
}

func (c *Coordinator) handleStartGameRequest(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.players[id]; !ok {
		return
	}

	logger.Log.Info("trying to start a game ...")
	for _, p := range c.players {
		if p.GameState != GameInitial || p.PlayerState != StateNone {
			logger.Log.Errorf("player %s was not in the correct state", p.ID)
			c.failLocked()
			return
		}
	}

	logger.Log.Info("sending game start request")
	c.out.Broadcast(protocol.Compose(protocol.CmdStartGameRequest, ""))
	c.armDeadlineLocked()
}

func (c *Coordinator) handleStartGameAck(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.players[id]
	if !ok {
		return
	}

	logger.Log.Infof("player %s has acknowledged the game start", id)
	p.GameState = GameStarting

	for _, other := range c.players {
		if other.GameState != GameStarting || other.PlayerState != StateNone {
			return
		}
	}
	logger.Log.Info("all players acknowledged, choosing drawer and guessers")
	c.assignRolesLocked()
}

// assignRolesLocked picks the drawer uniformly at random, makes every
// other player a guesser and sends out the role notifications together
// with the drawer's word offer. Caller holds c.mu.
func (c *Coordinator) assignRolesLocked() {
	ids := make([]string, 0, len(c.players))
	for id := range c.players {
		ids = append(ids, id)
	}
	drawer := ids[c.rnd.Intn(len(ids))]

	for id, p := range c.players {
		if id == drawer {
			p.PlayerState = StateDrawer
			logger.Log.Infof("player %s (%s) was chosen as the drawer", id, p.Username)
		} else {
			p.PlayerState = StateGuesser
			logger.Log.Infof("player %s (%s) was chosen as a guesser", id, p.Username)
		}
	}

	c.choosableWords = c.source.Offer(c.offerCount)

	logger.Log.Info("sending guesser requests")
	c.out.Multicast(drawer, protocol.Compose(protocol.CmdGuesserRequest, ""))
	logger.Log.Info("sending special drawer request")
	c.out.Unicast(drawer, protocol.Compose(protocol.CmdDrawerRequest, words.Join(c.choosableWords)))
	c.armDeadlineLocked()
}

func (c *Coordinator) handleDrawerAck(id, word string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.players[id]
	if !ok || p.PlayerState != StateDrawer {
		// Stray acks from guessers or idle players are no-ops.
		return
	}

	if !words.Contains(c.choosableWords, word) {
		logger.Log.Errorf("drawer %s did not send a word from the offer: %q", id, word)
		c.failLocked()
		return
	}

	c.chosenWord = word
	logger.Log.Infof("the drawer has chosen the word: %s", word)
	logger.Log.Info("sending round start request")
	c.out.Broadcast(protocol.Compose(protocol.CmdRoundStartRequest, ""))
	c.armDeadlineLocked()
}

func (c *Coordinator) handleRoundStartAck(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.players[id]
	if !ok {
		return
	}

	logger.Log.Infof("player %s has acknowledged the round start", id)
	p.GameState = GameStarted

	for _, other := range c.players {
		if other.GameState != GameStarted || other.PlayerState == StateNone {
			return
		}
	}
	logger.Log.Info("all players acknowledged, sending round started")
	c.revealLocked()
}

// revealLocked sends the drawer the chosen word and every guesser a
// mask of equal character length. A player holding neither role at this
// point is a coordinator bug; the reveal is aborted and routed through
// the ordinary error reset, it never takes the process down. Caller
// holds c.mu.
func (c *Coordinator) revealLocked() {
	if c.chosenWord == "" {
		logger.Log.Errorf("invariant violation: reveal reached without a chosen word")
		c.failLocked()
		return
	}

	blank := strings.Repeat(maskRune, len([]rune(c.chosenWord)))

	for id, p := range c.players {
		switch p.PlayerState {
		case StateGuesser:
			logger.Log.Info("sending guesser the blank word")
			c.out.Unicast(id, protocol.Compose(protocol.CmdRoundStarted, blank))
		case StateDrawer:
			logger.Log.Info("sending the drawer the actual word")
			c.out.Unicast(id, protocol.Compose(protocol.CmdRoundStarted, c.chosenWord))
		default:
			logger.Log.Errorf("invariant violation: player %s is in an illegal state at reveal: %v",
				id, ErrIllegalPlayerState)
			c.failLocked()
			return
		}
	}

	c.disarmDeadlineLocked()
	c.stats.IncRoundsStarted()
}

// fail broadcasts ERROR and resets the session.
func (c *Coordinator) fail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failLocked()
}

func (c *Coordinator) failLocked() {
	logger.Log.Error("sending error message")
	c.out.Broadcast(protocol.Compose(protocol.CmdError, ""))
	c.resetLocked()
}

// resetLocked returns every remaining player to the idle state and
// clears the round-scoped words. Idempotent. Caller holds c.mu.
func (c *Coordinator) resetLocked() {
	for _, p := range c.players {
		p.ResetStates()
	}
	c.choosableWords = nil
	c.chosenWord = ""
	c.disarmDeadlineLocked()
	c.stats.IncSessionResets()
}

// armDeadlineLocked (re)arms the negotiation deadline for the phase
// just entered. Caller holds c.mu.
func (c *Coordinator) armDeadlineLocked() {
	c.generation++
	if c.timeout <= 0 {
		return
	}
	if c.deadlineID != 0 {
		c.timers.Cancel(c.deadlineID)
	}
	gen := c.generation
	c.deadlineID = c.timers.Schedule(c.timeout, func() {
		c.expire(gen)
	})
}

func (c *Coordinator) disarmDeadlineLocked() {
	c.generation++
	if c.deadlineID != 0 {
		c.timers.Cancel(c.deadlineID)
		c.deadlineID = 0
	}
}

// expire is the deadline callback. A deadline that outlived its phase
// is dropped; a live one behaves exactly like a NACK.
func (c *Coordinator) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	logger.Log.Error("negotiation deadline expired, resetting session")
	c.failLocked()
}

// Status is a consistent snapshot of the session for monitoring and the
// admin endpoint.
type Status struct {
	Players    int
	Phase      Phase
	WordChosen bool
}

func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		Players:    len(c.players),
		Phase:      c.phaseLocked(),
		WordChosen: c.chosenWord != "",
	}
}
