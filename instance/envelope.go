package instance

import (
	"github.com/vilaureu/gamebridge"
	"github.com/vilaureu/gamebridge/errors"
)

// Envelope owns one instance's game state, error channel and capacity
// contract. The three are created together and torn down together.
type Envelope[G any] struct {
	state    *G
	errs     *errors.Channel
	contract gamebridge.CapacityContract
}

// Empty reports whether the state is at the empty sentinel, as after a
// failed creation or a destroy.
func (e *Envelope[G]) Empty() bool {
	return e.state == nil
}

// State returns the game state.
//
// Accessing the state of an empty envelope is a lifecycle violation by the
// host or logic layer and panics.
func (e *Envelope[G]) State() *G {
	if e.state == nil {
		panic("instance: state access on empty envelope")
	}
	return e.state
}

// Errors returns the instance's error channel. It is valid even when the
// creation factory failed.
func (e *Envelope[G]) Errors() *errors.Channel {
	return e.errs
}

// Contract returns the capacity contract resolved at creation time.
// It is the zero contract while the envelope is empty.
func (e *Envelope[G]) Contract() gamebridge.CapacityContract {
	return e.contract
}
