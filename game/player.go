package game

// PlayerState is the role a player holds during an active round.
type PlayerState int

const (
	StateNone PlayerState = iota
	StateDrawer
	StateGuesser
)

func (s PlayerState) String() string {
	switch s {
	case StateDrawer:
		return "drawer"
	case StateGuesser:
		return "guesser"
	default:
		return "none"
	}
}

// GameState tracks how far a player has progressed through the round
// handshake.
type GameState int

const (
	GameInitial GameState = iota
	GameStarting
	GameStarted
)

func (s GameState) String() string {
	switch s {
	case GameStarting:
		return "starting"
	case GameStarted:
		return "started"
	default:
		return "initial"
	}
}

// Player is the per-connection record owned by the Coordinator. Nothing
// outside the coordinator mutates it; all invariants are enforced there.
type Player struct {
	ID          string
	Username    string
	PlayerState PlayerState
	GameState   GameState
}

func NewPlayer(id, username string) *Player {
	return &Player{
		ID:          id,
		Username:    username,
		PlayerState: StateNone,
		GameState:   GameInitial,
	}
}

// ResetStates returns the player to the idle lobby state.
func (p *Player) ResetStates() {
	p.PlayerState = StateNone
	p.GameState = GameInitial
}
