package loader

import "fmt"

// TransportError reports a failed HTTP fetch. StatusCode is zero when no
// response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string // first bytes of a non-2xx response
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("fetch %s: status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ReadError reports a failed local read.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
