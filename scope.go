package scopekit

import (
	"errors"
	"io"
)

// Scope is an explicit cleanup stack owned by a single Run or RunErr call.
//
// Cleanups registered on a Scope run when the scope ends, in reverse
// registration order, on every exit path of the body (normal return, early
// return, panic unwinding), each exactly once. Unlike a bare guard, a
// Scope needs no defer discipline from the caller: registering a cleanup is
// by itself the guarantee that it runs.
//
// A Scope is only valid inside the body it was created for. Registering a
// cleanup after the body has returned, or from inside a running cleanup,
// panics: by then this scope's cleanup stack is already executing. Do not
// retain a Scope beyond its body.
//
// A Scope is not safe for concurrent use; see the package documentation.
type Scope struct {
	cfg config

	stack  []func() error
	sealed bool

	// RunErr collects cleanup errors for its return value; Run reports them.
	collect bool
	errs    []error
}

// Run executes body with a fresh Scope, then runs the scope's cleanups.
//
// Cleanups run on every exit path, in reverse registration order, each
// exactly once, before Run returns or a panic from the body continues to
// propagate. A panic raised by one cleanup does not prevent the remaining
// cleanups from running; it joins the unwind with Go's standard defer
// semantics (the newest panic supersedes, the runtime reports the chain).
//
// Cleanup errors (DeferErr, CloseOnExit) are reported via WithErrorHandler
// if provided, otherwise to stderr. Use RunErr to receive them instead.
//
// It panics if body is nil.
func Run(body func(*Scope), opts ...Option) {
	if body == nil {
		panic("scopekit: Run called with nil body")
	}
	s := &Scope{cfg: newConfig(opts)}
	defer s.end()
	body(s)
}

// RunErr is like Run for bodies that return an error.
//
// The returned error is the body's error joined (errors.Join) with any
// cleanup errors in cleanup execution order; it is nil when there are none.
// Panics from the body or from cleanups propagate as in Run; cleanup errors
// collected before such a panic are discarded with it.
//
// It panics if body is nil.
func RunErr(body func(*Scope) error, opts ...Option) (err error) {
	if body == nil {
		panic("scopekit: RunErr called with nil body")
	}
	s := &Scope{cfg: newConfig(opts), collect: true}
	defer func() {
		s.end()
		if cerr := errors.Join(s.errs...); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return body(s)
}

// Defer registers action to run when the scope ends.
//
// Actions run in reverse registration order (last registered, first run).
// It panics if action is nil or if the scope has already ended.
func (s *Scope) Defer(action func()) {
	if action == nil {
		panic("scopekit: Defer called with nil action")
	}
	s.register(func() error { action(); return nil })
}

// DeferErr registers an error-returning action to run when the scope ends.
//
// Under RunErr, a non-nil error is joined into the returned error. Under
// Run, it is reported via the scope's WithErrorHandler, or to stderr by
// default. It panics if action is nil or if the scope has already ended.
func (s *Scope) DeferErr(action func() error) {
	if action == nil {
		panic("scopekit: DeferErr called with nil action")
	}
	s.register(action)
}

// CloseOnExit registers c.Close to run when the scope ends, with the same
// error disposition as DeferErr.
//
// It panics if c is nil or if the scope has already ended.
func (s *Scope) CloseOnExit(c io.Closer) {
	if c == nil {
		panic("scopekit: CloseOnExit called with nil Closer")
	}
	s.register(c.Close)
}

// Attach constructs a guard owning value and cleanup and registers its Drop
// on the scope, so a single declaration both creates the guard and
// guarantees its destruction when the scope ends:
//
//	scopekit.Run(func(s *scopekit.Scope) {
//		g := scopekit.Attach(s, 0, func(n *int) { total = *n })
//		// ... mutate *g.Value() ...
//	})
//
// The guard behaves exactly as if it had been armed with defer in the body:
// reverse registration order among siblings, exactly-once cleanup, and an
// early manual Drop makes the scope-end call a no-op.
//
// Attach is a free function because Go methods cannot introduce type
// parameters.
func Attach[T any](s *Scope, value T, cleanup func(*T)) *Guard[T] {
	g := New(value, cleanup)
	s.Defer(g.Drop)
	return g
}

func (s *Scope) register(cleanup func() error) {
	if s.sealed {
		panic("scopekit: cleanup registered after scope ended")
	}
	s.stack = append(s.stack, cleanup)
}

// end seals the scope and runs its stack in reverse registration order.
func (s *Scope) end() {
	s.sealed = true
	s.unwind(len(s.stack))
}

// unwind runs the first n stack entries, last registered first. Each entry
// runs under its own deferred frame so that a panic in one does not prevent
// the entries registered before it from running, the same guarantee a stack
// of real defer statements gives sibling guards.
func (s *Scope) unwind(n int) {
	if n == 0 {
		return
	}
	defer s.unwind(n - 1)

	err := s.stack[n-1]()
	if err == nil {
		return
	}
	if s.collect {
		s.errs = append(s.errs, err)
		return
	}
	reportCleanupError(&s.cfg, err)
}
