package validate

// State is the lifecycle position of a chain.
type State string

const (
	// StateEmpty holds no requests. Queries fail with ErrInvalidChainState.
	StateEmpty State = "empty"
	// StatePending holds at least one request without an outcome.
	StatePending State = "pending"
	// StateResolved holds requests that all have an outcome.
	StateResolved State = "resolved"
)

type event string

const (
	eventRegister event = "register"
	eventExecute  event = "execute"
	eventClear    event = "clear"
)

// transitions is indexed [from][event] and never modified.
var transitions = map[State]map[event]State{
	StateEmpty: {
		eventRegister: StatePending,
		eventExecute:  StateEmpty,
		eventClear:    StateEmpty,
	},
	StatePending: {
		eventRegister: StatePending,
		eventExecute:  StateResolved,
		eventClear:    StateEmpty,
	},
	StateResolved: {
		eventRegister: StatePending,
		eventExecute:  StateResolved,
		eventClear:    StateEmpty,
	},
}

// lifecycle tracks the state of a single chain. It is not synchronized; a
// chain has one owner.
type lifecycle struct {
	current State
}

func newLifecycle() lifecycle {
	return lifecycle{current: StateEmpty}
}

// fire applies e. Unknown events leave the state unchanged.
func (l *lifecycle) fire(e event) {
	if next, ok := transitions[l.current][e]; ok {
		l.current = next
	}
}
