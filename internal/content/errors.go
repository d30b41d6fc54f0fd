package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a LoadError.
type ErrorKind int

const (
	// NotFound means the content directory is absent and could not be
	// fetched.
	NotFound ErrorKind = iota + 1
	// FetchFailed means the fetch tool ran but did not succeed.
	FetchFailed
	// ParseFailed means a content file is malformed.
	ParseFailed
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case FetchFailed:
		return "FetchFailed"
	case ParseFailed:
		return "ParseFailed"
	}
	return "Unknown"
}

// ErrToolMissing is returned by a Fetcher whose external tool is not
// installed.
var ErrToolMissing = errors.New("fetch tool not available")

// LoadError is returned by Load. Every LoadError is fatal at startup.
type LoadError struct {
	Kind ErrorKind
	// Path is the content directory attempted.
	Path string
	// Tool is the external tool involved, if any.
	Tool string
	// Item identifies the file that failed to parse.
	Item string
	Err  error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	switch e.Kind {
	case NotFound:
		fmt.Fprintf(&b, "content not found (%s): %s", e.Kind, e.Path)
	case FetchFailed:
		fmt.Fprintf(&b, "fetching content failed (%s): %s", e.Kind, e.Path)
	case ParseFailed:
		fmt.Fprintf(&b, "parsing content failed (%s): %s", e.Kind, e.Item)
	default:
		fmt.Fprintf(&b, "loading content: %s", e.Path)
	}
	if e.Tool != "" {
		fmt.Fprintf(&b, " [tool: %s]", e.Tool)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a LoadError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var le *LoadError
	if !errors.As(err, &le) {
		return false
	}
	return le.Kind == kind
}
