package inputflow

import (
	"fmt"
	"strings"
)

// Packable is an event already paired with the simulator that will play
// it. Implementations must be cloneable and printable.
type Packable interface {
	Clone() Packable
	String() string
	Call()
}

// Pack erases the event and simulator types so heterogeneous
// descriptions can be stored and played together. A Pack plays exactly
// the atomic effects of the event it wraps, in the same order.
type Pack struct {
	inner Packable
}

// NewPack wraps p. Panics if p is nil.
func NewPack(p Packable) Pack {
	if p == nil {
		panic("inputflow: packable cannot be nil")
	}
	return Pack{inner: p}
}

// Bound packs event together with sim.
func Bound[S any](event Event[S], sim S) Pack {
	if event == nil {
		panic("inputflow: event cannot be nil")
	}
	return Pack{inner: &bound[S]{event: event, sim: sim}}
}

// Run plays the wrapped event. The zero Pack does nothing.
func (p Pack) Run() {
	if p.inner != nil {
		p.inner.Call()
	}
}

// Clone returns an independent copy of p.
func (p Pack) Clone() Pack {
	if p.inner == nil {
		return p
	}
	return Pack{inner: p.inner.Clone()}
}

// String implements fmt.Stringer.
func (p Pack) String() string {
	if p.inner == nil {
		return ""
	}
	return p.inner.String()
}

// bound is the Packable produced by Bound.
type bound[S any] struct {
	event Event[S]
	sim   S
}

func (b *bound[S]) Call() {
	b.event.Play(b.sim)
}

func (b *bound[S]) Clone() Packable {
	return &bound[S]{event: cloneEvent(b.event), sim: b.sim}
}

func (b *bound[S]) String() string {
	return fmt.Sprint(b.event)
}

// Packs is an ordered list of packs, played front to back.
type Packs []Pack

// Run plays every pack in order.
func (ps Packs) Run() {
	for _, p := range ps {
		p.Run()
	}
}

// Clone returns a deep copy of ps.
func (ps Packs) Clone() Packs {
	out := make(Packs, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}

// String joins the packs in play order.
func (ps Packs) String() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

// Erase lifts a pack into an Event for any simulator type, so it can sit
// inside a static composition. The simulator passed to Play is ignored;
// the pack plays against the simulator it was bound to.
func Erase[S any](p Pack) Event[S] {
	return erased[S]{pack: p}
}

type erased[S any] struct {
	pack Pack
}

func (e erased[S]) Play(S) {
	e.pack.Run()
}

func (e erased[S]) Clone() Event[S] {
	return erased[S]{pack: e.pack.Clone()}
}

func (e erased[S]) String() string {
	return e.pack.String()
}

// packsEvent plays a Packs through the observed runner.
type packsEvent struct {
	packs Packs
}

func (p packsEvent) Play(struct{}) {
	p.packs.Run()
}

func (p packsEvent) String() string {
	return p.packs.String()
}
