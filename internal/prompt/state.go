package prompt

// State is the position of a session in its two-state machine.
type State int

const (
	AwaitingAnswer State = iota
	Done
)

func (s State) String() string {
	if s == Done {
		return "done"
	}
	return "awaiting_answer"
}

// TurnState tracks the counters a session accumulates while it runs.
type TurnState struct {
	State        State
	Intensity    int
	Lines        int
	Declines     int
	Unrecognized int
	Accepted     bool
}

func newTurnState() TurnState {
	return TurnState{State: AwaitingAnswer, Intensity: 1}
}

// Apply advances the state for one classified line. Done is terminal.
func (s *TurnState) Apply(a Answer) {
	if s.State == Done {
		return
	}
	s.Lines++
	switch a {
	case Affirmative:
		s.Accepted = true
		s.State = Done
	case Negative:
		s.Declines++
		s.Intensity++
	default:
		s.Unrecognized++
	}
}

// finish marks the session done without an answer (end of input).
func (s *TurnState) finish() {
	s.State = Done
}
