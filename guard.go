package scopekit

// Guard owns a value and a cleanup action that runs exactly once when the
// guard is dropped.
//
// The declaration idiom pairs construction with arming, the same way an
// opened file pairs with its deferred Close:
//
//	g := scopekit.New(newSession(), func(s *session) { s.reset() })
//	defer g.Drop()
//
// Armed this way, the cleanup runs on every exit path of the declaring
// scope: normal completion, early return, and panic unwinding. The cleanup
// receives a pointer to the held value and observes the value's state at
// drop time, not at construction time.
//
// A Guard models exclusive ownership of its value and cleanup by the scope
// that declared it. It is not safe for concurrent use; if the held value
// must be shared across goroutines, the caller is responsible for external
// synchronization.
type Guard[T any] struct {
	value   T
	cleanup func(*T)
	dropped bool
}

// New creates a guard owning value and cleanup.
//
// It panics if cleanup is nil (an assembly error).
func New[T any](value T, cleanup func(*T)) *Guard[T] {
	if cleanup == nil {
		panic("scopekit: New called with nil cleanup")
	}
	return &Guard[T]{value: value, cleanup: cleanup}
}

// NewErr is like New for cleanups that report failure as an error.
//
// A non-nil cleanup error does not alter control flow: it is reported via
// WithErrorHandler if provided, otherwise to stderr. Inside RunErr, prefer
// Scope.DeferErr or Scope.CloseOnExit to have cleanup errors joined into the
// returned error instead.
func NewErr[T any](value T, cleanup func(*T) error, opts ...Option) *Guard[T] {
	if cleanup == nil {
		panic("scopekit: NewErr called with nil cleanup")
	}
	c := newConfig(opts)
	return &Guard[T]{value: value, cleanup: func(v *T) {
		if err := cleanup(v); err != nil {
			reportCleanupError(&c, err)
		}
	}}
}

// Get returns the current held value.
//
// Right after construction it returns the value the guard was built with;
// after mutation through Value it returns the mutated state. Get never
// triggers the cleanup.
func (g *Guard[T]) Get() T {
	return g.value
}

// Value returns a pointer to the held value for in-place mutation.
//
// The pointer stays valid for the guard's entire lifetime and may be used
// any number of times before Drop. Mutations made through it are visible to
// the cleanup.
func (g *Guard[T]) Value() *T {
	return &g.value
}

// Drop runs the cleanup with a pointer to the held value.
//
// The cleanup runs at most once: the first Drop runs it, later calls are
// no-ops. Arm Drop with defer immediately after construction so it runs on
// every exit path. Drop may also be called directly to destroy the guard
// early; the deferred call then becomes a no-op.
//
// Drop does not intercept panics raised by the cleanup: they propagate to
// the caller on the usual channel. If the cleanup panics while an earlier
// panic is already unwinding the stack, Go's standard rules apply: the new
// panic value supersedes the one in flight (recover observes the new value)
// and the runtime's crash report chains both.
func (g *Guard[T]) Drop() {
	if g.dropped {
		return
	}
	g.dropped = true
	g.cleanup(&g.value)
}

// Dropped reports whether the cleanup has already run.
//
// After Drop, the guard is spent: Get and Value remain callable and observe
// whatever state the cleanup left behind.
func (g *Guard[T]) Dropped() bool {
	return g.dropped
}
