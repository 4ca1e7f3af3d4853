package transport

import "fmt"

// ErrorKind classifies transport failures.
type ErrorKind int

const (
	// ConnectionFailed covers DNS failures, refused connections and
	// any other I/O error that is not a timeout.
	ConnectionFailed ErrorKind = iota
	// Timeout means the per-call deadline expired before a response
	// arrived.
	Timeout
	// HTTPStatus means the server answered with a non-2xx status.
	HTTPStatus
)

func (k ErrorKind) String() string {
	switch k {
	case ConnectionFailed:
		return "connection failed"
	case Timeout:
		return "timeout"
	case HTTPStatus:
		return "http status"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the single error type the transport produces. Status is set
// only for HTTPStatus; Err carries the underlying cause when one exists.
type Error struct {
	Kind   ErrorKind
	Status int
	URL    string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case HTTPStatus:
		return fmt.Sprintf("transport: %s %d (%s)", e.Kind, e.Status, e.URL)
	default:
		return fmt.Sprintf("transport: %s (%s): %v", e.Kind, e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
