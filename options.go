package scopekit

type config struct {
	name string
	tags []Tag

	onError ErrorHandler
}

// Option configures error reporting for a single guard or scope.
//
// Options only affect how cleanup errors are reported (NewErr, DeferErr,
// Scope.DeferErr, Scope.CloseOnExit). They never change the destruction
// protocol itself.
type Option func(*config)

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithName sets a human-friendly name included in cleanup error reports.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithTag appends a single tag (key/value) to reports.
func WithTag(key, value string) Option {
	return func(c *config) {
		c.tags = append(c.tags, Tag{Key: key, Value: value})
	}
}

// WithTags appends tags to reports (preserving order).
func WithTags(tags ...Tag) Option {
	return func(c *config) {
		if len(tags) == 0 {
			return
		}
		c.tags = append(c.tags, tags...)
	}
}

// WithErrorHandler sets the handler for cleanup errors.
//
// If not set, cleanup errors are reported to stderr by default. Panics in the
// handler are contained: they are recovered and reported to stderr, so a
// misbehaving handler cannot disturb the destruction protocol.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) { c.onError = h }
}
