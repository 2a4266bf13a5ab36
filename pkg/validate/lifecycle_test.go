package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from State
		ev   event
		to   State
	}{
		{StateEmpty, eventRegister, StatePending},
		{StateEmpty, eventExecute, StateEmpty},
		{StateEmpty, eventClear, StateEmpty},
		{StatePending, eventRegister, StatePending},
		{StatePending, eventExecute, StateResolved},
		{StatePending, eventClear, StateEmpty},
		{StateResolved, eventRegister, StatePending},
		{StateResolved, eventExecute, StateResolved},
		{StateResolved, eventClear, StateEmpty},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.ev), func(t *testing.T) {
			l := lifecycle{current: tt.from}
			l.fire(tt.ev)
			assert.Equal(t, tt.to, l.current)
		})
	}
}

func TestLifecycleUnknownEvent(t *testing.T) {
	t.Parallel()

	l := newLifecycle()
	l.fire(event("rewind"))
	assert.Equal(t, StateEmpty, l.current)

	l = lifecycle{current: State("bogus")}
	l.fire(eventRegister)
	assert.Equal(t, State("bogus"), l.current)
}
