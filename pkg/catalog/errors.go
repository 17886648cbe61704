package catalog

import (
	"fmt"

	"github.com/go-faster/errors"
)

const (
	// DefaultRemoteMessage is reported when the API fails without saying why.
	DefaultRemoteMessage = "API returned an error"
	// HealthFailedMessage is reported when a health check fails without saying why.
	HealthFailedMessage = "API health check failed"
)

// ErrorKind classifies catalog errors.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindTransport
	KindDecode
	KindRemote
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// TransportError is a connection failure, a timeout, or a non-2xx status.
// StatusCode is zero when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to do request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the response body was not a usable envelope.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RemoteError is an envelope with success set to false. Message is the
// envelope's error field verbatim, or a default when it was absent.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: %s", e.Message)
}

// Kind reports which class of catalog error err is.
func Kind(err error) ErrorKind {
	var (
		transportErr *TransportError
		decodeErr    *DecodeError
		remoteErr    *RemoteError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &transportErr):
		return KindTransport
	case errors.As(err, &decodeErr):
		return KindDecode
	case errors.As(err, &remoteErr):
		return KindRemote
	default:
		return KindUnknown
	}
}

func decodeError(err error, msg string) error {
	return &DecodeError{Err: errors.Wrap(err, msg)}
}
