package scopekit

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"
)

var stderrMu sync.Mutex

func reportCleanupError(c *config, err error) {
	info := ErrorInfo{Name: c.name, Tags: cloneTags(c.tags), Err: err}
	if c.onError != nil {
		callErrorHandlerNoPanic(c.onError, info)
		return
	}
	reportErrorToStderr(info)
}

func callErrorHandlerNoPanic(h ErrorHandler, info ErrorInfo) {
	defer func() {
		if p := recover(); p != nil {
			// Avoid secondary panics from user handlers disturbing destruction.
			reportErrorToStderr(ErrorInfo{
				Name: info.Name,
				Tags: info.Tags,
				Err:  fmt.Errorf("scopekit: error handler panicked: %v", p),
			})
		}
	}()
	h(info)
}

func reportErrorToStderr(info ErrorInfo) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "scopekit: cleanup error")
	if info.Name != "" {
		fmt.Fprintf(&buf, " name=%q", info.Name)
	}
	if len(info.Tags) > 0 {
		fmt.Fprintf(&buf, " tags=%s", formatTags(info.Tags))
	}
	fmt.Fprintf(&buf, " err=%v\n", info.Err)

	stderrMu.Lock()
	_, _ = os.Stderr.Write(buf.Bytes())
	stderrMu.Unlock()
}

func formatTags(tags []Tag) string {
	// Keep insertion order for stable output.
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range tags {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%q", t.Key, t.Value)
	}
	b.WriteByte('}')
	return b.String()
}

func cloneTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]Tag, len(tags))
	copy(out, tags)
	return out
}
