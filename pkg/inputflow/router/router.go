package router

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
)

// Router is a runtime simulator: it dispatches events to handlers chosen
// by the event's dynamic type. It implements inputflow.TrySimulator and
// inputflow.Supporter, so it serves the fallible path and TryBind.
//
// Router is safe for concurrent registration and dispatch.
type Router struct {
	name string

	mu       sync.RWMutex
	handlers map[reflect.Type]func(any)
}

// New creates an empty router. name appears in unsupported-event errors.
func New(name string) *Router {
	if name == "" {
		name = "router"
	}
	return &Router{
		name:     name,
		handlers: make(map[reflect.Type]func(any)),
	}
}

// Handle registers fn for events of exactly type E, replacing any earlier
// handler. Returns r for chaining. Panics if fn is nil.
//
// Example:
//
//	r := router.New("keys")
//	router.Handle(r, func(e inputs.KeyEvent) { log.Println(e) })
func Handle[E any](r *Router, fn func(E)) *Router {
	if fn == nil {
		panic("router: handler cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[reflect.TypeFor[E]()] = func(event any) {
		fn(event.(E))
	}
	return r
}

// Unhandle removes the handler for E, if any.
func Unhandle[E any](r *Router) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, reflect.TypeFor[E]())
}

// Name returns the router's name.
func (r *Router) Name() string {
	return r.name
}

// TrySimulate implements inputflow.TrySimulator.
func (r *Router) TrySimulate(event any) error {
	fn, ok := r.lookup(event)
	if !ok {
		return fmt.Errorf("%w: no handler for %T", inputflow.ErrUnsupported, event)
	}
	fn(event)
	return nil
}

// Supports implements inputflow.Supporter.
func (r *Router) Supports(event any) bool {
	_, ok := r.lookup(event)
	return ok
}

// Len returns the number of registered event types.
func (r *Router) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Types returns the registered event type names, sorted.
func (r *Router) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

func (r *Router) lookup(event any) (func(any), bool) {
	if event == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.handlers[reflect.TypeOf(event)]
	return fn, ok
}

// Compile-time interface checks.
var (
	_ inputflow.TrySimulator = (*Router)(nil)
	_ inputflow.Supporter    = (*Router)(nil)
)
