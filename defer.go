package scopekit

// Defer declares a guard holding no meaningful payload whose cleanup runs
// action. It schedules an arbitrary action at scope exit with the same
// discipline as value-owning guards:
//
//	d := scopekit.Defer(func() { markSectionDone() })
//	defer d.Drop()
//
// The placement of the defer statement is load-bearing: it determines which
// scope's exit runs the action. Multiple deferred actions armed in one scope
// run in reverse declaration order, interleaved with any other guards armed
// there.
//
// For a plain fire-at-exit action, the language's own defer statement is
// enough. Use Defer when the action must stay idempotent against an early
// manual Drop, or to pair with DeferErr and Scope registration in one
// consistent style.
//
// It panics if action is nil.
func Defer(action func()) *Guard[struct{}] {
	if action == nil {
		panic("scopekit: Defer called with nil action")
	}
	return New(struct{}{}, func(*struct{}) { action() })
}

// DeferErr is like Defer for actions that report failure as an error.
//
// A non-nil error does not alter control flow: it is reported via
// WithErrorHandler if provided, otherwise to stderr. This is the guard
// rendering of the `defer f.Close()` pattern that would otherwise discard
// the error silently.
//
// It panics if action is nil.
func DeferErr(action func() error, opts ...Option) *Guard[struct{}] {
	if action == nil {
		panic("scopekit: DeferErr called with nil action")
	}
	return NewErr(struct{}{}, func(*struct{}) error { return action() }, opts...)
}
