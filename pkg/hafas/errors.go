package hafas

import "errors"

var (
	ErrTransport = errors.New("transport-error")
	ErrTimeout   = errors.New("timeout")
	ErrBadStatus = errors.New("bad-status")
	ErrProtocol  = errors.New("protocol-error")
)

// Error is returned by every failing upstream call. Kind is one of the Err* sentinels,
// so callers can match with errors.Is(err, hafas.ErrTimeout).
type Error struct {
	Kind       error
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// Code is the metrics and log label for the failure kind.
func (e *Error) Code() string {
	return e.Kind.Error()
}

func protocolError(message string, cause error) *Error {
	return &Error{Kind: ErrProtocol, Message: message, Err: cause}
}
