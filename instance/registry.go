package instance

import (
	"fmt"
	"sync"

	"github.com/vilaureu/gamebridge"
	"github.com/vilaureu/gamebridge/errors"
)

// Handle is an opaque reference to one live instance in a Registry.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Cloner is the copy capability the registry relies on to duplicate state.
// Cloning must be total over the logic's domain: it never fails for a valid
// source state.
type Cloner[G any] interface {
	Clone() G
}

// Factory produces a fresh game state together with its capacity contract.
type Factory[G any] func() (G, gamebridge.CapacityContract, error)

type slot[G any] struct {
	env   *Envelope[G]
	valid bool
}

// Registry is the arena of live instances belonging to one dispatch table.
//
// Slots are reused through a free list, and destroyed slots are invalidated
// so stale handles trap instead of reaching reclaimed state.
type Registry[G Cloner[G]] struct {
	caps  gamebridge.CapabilitySet
	slots []slot[G]
	free  []Handle
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry for a table built with caps.
func NewRegistry[G Cloner[G]](caps gamebridge.CapabilitySet) *Registry[G] {
	return &Registry[G]{
		caps:  caps,
		slots: make([]slot[G], 0, 16),
	}
}

// Create allocates a new instance and runs factory for its state.
//
// The error channel exists before the factory runs. When the factory fails,
// its error is stored in the channel, the state stays at the empty sentinel
// and the returned handle is still live so the host can retrieve the
// message; the factory error is also returned. A successful factory has its
// contract validated against the enabled capabilities, and a violated
// contract panics: exposing it would let later calls write past host
// buffers.
func (r *Registry[G]) Create(factory Factory[G]) (Handle, error) {
	env := &Envelope[G]{errs: &errors.Channel{}}

	state, contract, err := factory()
	if err != nil {
		env.errs.Set(err)
		return r.insert(env), err
	}
	if verr := contract.Validate(r.caps); verr != nil {
		panic(fmt.Sprintf("instance: invalid capacity contract: %v", verr))
	}
	env.state = &state
	env.contract = contract

	return r.insert(env), nil
}

// Clone duplicates the instance behind h into a fresh one with its own
// error channel. The source must hold a valid state.
func (r *Registry[G]) Clone(h Handle) Handle {
	src := r.Get(h)
	state := (*src.State()).Clone()

	env := &Envelope[G]{
		state:    &state,
		errs:     &errors.Channel{},
		contract: src.contract,
	}
	return r.insert(env)
}

// Get returns the envelope behind h.
//
// Unknown and destroyed handles violate the lifecycle contract and panic.
func (r *Registry[G]) Get(h Handle) *Envelope[G] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := int(h) - 1
	if i < 0 || i >= len(r.slots) || !r.slots[i].valid {
		panic(fmt.Sprintf("instance: use of invalid handle %d", h))
	}
	return r.slots[i].env
}

// Destroy tears down the instance behind h and releases its slot.
//
// The state is reset to the empty sentinel and the slot invalidated before
// reuse, so destroying twice or touching the handle afterwards panics.
func (r *Registry[G]) Destroy(h Handle) {
	env := r.Get(h)
	env.state = nil
	env.errs = nil
	env.contract = gamebridge.CapacityContract{}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[int(h)-1] = slot[G]{}
	r.free = append(r.free, h)
}

// Len returns the number of live instances.
func (r *Registry[G]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, s := range r.slots {
		if s.valid {
			n++
		}
	}
	return n
}

// Close destroys every live instance. The registry stays usable for
// counting but any retained handle is dead afterwards.
func (r *Registry[G]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.slots {
		if !r.slots[i].valid {
			continue
		}
		r.slots[i].env.state = nil
		r.slots[i].env.errs = nil
		r.slots[i] = slot[G]{}
		r.free = append(r.free, Handle(i+1))
	}
}

func (r *Registry[G]) insert(env *Envelope[G]) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n := len(r.free); n > 0 {
		h := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[int(h)-1] = slot[G]{env: env, valid: true}
		return h
	}
	r.slots = append(r.slots, slot[G]{env: env, valid: true})
	return Handle(len(r.slots))
}
