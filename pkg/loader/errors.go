package loader

import (
	"fmt"
	"net/http"
)

// LoadError reports a failed fetch: transport failure, non-2xx status or an
// unreadable file. Callers fall back to an empty store.
type LoadError struct {
	Source     Source
	StatusCode int
	Err        error
}

func (e *LoadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("loader: %s: unexpected status %d %s", e.Source, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("loader: %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
