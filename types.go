package scopekit

// Tag is a lightweight key/value pair carried by cleanup failure reports.
// Tags are kept as a slice to preserve insertion order for stable output.
type Tag struct {
	Key   string
	Value string
}

// ErrorHandler is called when a cleanup action returns a non-nil error.
//
// Handlers run synchronously on the destruction path. They must be fast and
// must not block; if you need asynchronous processing, hand off to your own
// goroutine or a buffered channel from the handler.
type ErrorHandler func(info ErrorInfo)

// ErrorInfo describes an error returned by a cleanup action.
type ErrorInfo struct {
	Name string
	Tags []Tag
	Err  error
}
