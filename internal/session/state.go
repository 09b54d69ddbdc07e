package session

import "fmt"

// State is the lifecycle position of a Session.
type State int

const (
	StateIdle State = iota
	StateAwaitingPick
	StateNormalizing
	StateCompleted
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingPick:
		return "awaiting_pick"
	case StateNormalizing:
		return "normalizing"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateCancelled || s == StateFailed
}

var transitions = map[State][]State{
	StateIdle:         {StateAwaitingPick, StateFailed},
	StateAwaitingPick: {StateNormalizing, StateCancelled, StateFailed},
	StateNormalizing:  {StateCompleted, StateFailed},
}

func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
