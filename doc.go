// Package scopekit provides deterministic scope-exit cleanup: scope guards
// that own a value and run a bound cleanup action exactly once when control
// leaves the declaring scope, however it leaves.
//
// scopekit is intentionally small and standard-library flavored: it only
// depends on the Go standard library, and it builds on the language's own
// defer/panic machinery rather than simulating it.
//
// The main entry points are:
//   - New: pair a value with a cleanup and get a Guard; arm it with defer.
//   - Defer: schedule a payload-free action at scope exit, guard-style.
//   - Run / RunErr: execute a body against an explicit cleanup stack (Scope)
//     where registering a cleanup is by itself the guarantee that it runs.
//
// # Quick start
//
// A guard pairs construction with arming, the same way an opened file pairs
// with its deferred Close:
//
//	func process() error {
//		g := scopekit.New(newState(), func(st *state) { st.reset() })
//		defer g.Drop()
//
//		// read and mutate the held value through the guard
//		g.Value().count++
//		if g.Get().count > limit {
//			return errTooMany // cleanup still runs
//		}
//		return nil // cleanup runs here too
//	}
//
// The cleanup runs exactly once, on every exit path: normal completion,
// early return, and panic unwinding. It receives a pointer to the held
// value and observes the value's state at drop time; mutations made through
// Value before the scope exits are never lost.
//
// # Ordering
//
// Guards armed with defer in one scope run in reverse declaration order,
// mirroring the unwind order of nested resource acquisitions: acquire A,
// acquire B, release B, release A. Scope cleanups (see below) follow the
// same last-registered-first-run discipline.
//
// # Deferred actions
//
// Defer declares a guard with no meaningful payload, purely to schedule an
// action at scope exit:
//
//	d := scopekit.Defer(func() { audit.Log("section done") })
//	defer d.Drop()
//
// The placement of the defer statement is load-bearing: it determines which
// scope's exit runs the action. DeferErr is the same for actions that
// report failure as an error, the guard rendering of `defer f.Close()`
// without the silently discarded error.
//
// # Scopes
//
// Run executes a body against an explicit cleanup stack. Registration alone
// guarantees execution; there is no Drop to remember:
//
//	scopekit.Run(func(s *scopekit.Scope) {
//		f := openTemp()
//		s.CloseOnExit(f)
//		s.Defer(func() { os.Remove(f.Name()) })
//		// ... use f; return early or panic freely ...
//	})
//
// RunErr additionally returns the body's error joined with any cleanup
// errors (errors.Join), in cleanup execution order:
//
//	err := scopekit.RunErr(func(s *scopekit.Scope) error {
//		conn := dial()
//		s.DeferErr(conn.Close)
//		return useConn(conn)
//	})
//
// Attach combines both styles: it constructs a value-owning guard and
// registers its destruction on the scope in one declaration.
//
// # Cleanup failures
//
// scopekit never recovers from or suppresses a panic raised by a cleanup;
// that is the caller's (or the runtime's) business. A cleanup panic
// propagates on the usual channel, and the remaining sibling cleanups still
// run, exactly as they would with plain defer statements. If a cleanup
// panics while an earlier panic is already unwinding the stack, Go's
// standard rules decide: the new panic value supersedes the one in flight
// (recover observes the new value) and the runtime's crash report chains
// both.
//
// Cleanup errors are a separate, non-control-flow channel: the Err variants
// (NewErr, DeferErr, CloseOnExit) report them via WithErrorHandler when
// provided, otherwise to stderr, and RunErr joins them into its return
// value. Reporting never alters the destruction protocol.
//
// # Error reporting
//
// Reports carry an optional name and tags for correlation:
//
//	d := scopekit.DeferErr(f.Close,
//		scopekit.WithName("spool-file"),
//		scopekit.WithTag("dir", dir),
//		scopekit.WithErrorHandler(func(info scopekit.ErrorInfo) {
//			slog.Warn("cleanup failed", "name", info.Name, "err", info.Err)
//		}),
//	)
//	defer d.Drop()
//
// Panics inside a user handler are contained: they are recovered and
// reported to stderr so observability plumbing cannot disturb destruction.
// The exact stderr output format is best-effort diagnostic output and may
// change.
//
// # Concurrency
//
// Guards and Scopes model exclusive ownership by the declaring scope and are
// purely sequential: no operation blocks, suspends, or times out, and none
// of them is safe for concurrent use. If a held value or cleanup must cross
// goroutines, the caller is responsible for external synchronization.
//
// # Notes
//
//   - os.Exit (and log.Fatal, which calls it) terminates the process without
//     running defers: no guard or scope cleanup runs. The exactly-once
//     guarantee holds in the absence of such process-level termination.
//   - A guard whose Drop is never armed or called never runs its cleanup;
//     Go cannot detect the missing defer at compile time. Keep the
//     construct-then-arm pair adjacent, or use Run/Attach, where
//     registration alone is sufficient.
//   - After Drop, a guard is spent: Get and Value still work and observe
//     whatever state the cleanup left behind.
package scopekit
