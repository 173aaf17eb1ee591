package game

// Phase is the aggregate session phase. It is derived from the player
// records on demand, never stored.
type Phase int

const (
	PhaseLobby Phase = iota
	PhaseStartNegotiation
	PhaseRoleAssignment
	PhaseRoundNegotiation
	PhaseRoundActive
)

func (p Phase) String() string {
	switch p {
	case PhaseStartNegotiation:
		return "start_negotiation"
	case PhaseRoleAssignment:
		return "role_assignment"
	case PhaseRoundNegotiation:
		return "round_negotiation"
	case PhaseRoundActive:
		return "round_active"
	default:
		return "lobby"
	}
}

// phaseLocked derives the current phase. Caller holds c.mu.
func (c *Coordinator) phaseLocked() Phase {
	rolesAssigned := false
	allStarted := len(c.players) > 0
	anyStarting := false
	for _, p := range c.players {
		if p.PlayerState != StateNone {
			rolesAssigned = true
		}
		if p.GameState == GameStarting {
			anyStarting = true
		}
		if p.GameState != GameStarted {
			allStarted = false
		}
	}

	switch {
	case rolesAssigned && c.chosenWord != "" && allStarted:
		return PhaseRoundActive
	case rolesAssigned && c.chosenWord != "":
		return PhaseRoundNegotiation
	case rolesAssigned:
		return PhaseRoleAssignment
	case anyStarting:
		return PhaseStartNegotiation
	default:
		return PhaseLobby
	}
}
