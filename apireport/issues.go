package apireport

import (
	"errors"
	"fmt"
	"strings"
)

// Issue represents a single schema violation in a finished document.
type Issue struct {
	Path    string // JSON Pointer into the document (for example: /exports/Foo).
	Keyword string // Schema keyword that failed (required, type, enum, ...).
	Message string
}

// Issues is a collection of schema violations that implements error. A
// non-empty Issues value is fatal: a non-conformant document must never be
// treated as a successful run.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /exports/Foo
		fmt.Fprintf(b, "%s at %s", it.Keyword, pointerOrRoot(it.Path))
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
