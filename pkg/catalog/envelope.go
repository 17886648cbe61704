package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/go-faster/errors"
)

// envelope wraps every storefront API response.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func parseEnvelope(body []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, decodeError(err, "decode envelope")
	}
	if env.Success == nil {
		return envelope{}, &DecodeError{Err: errors.New("envelope has no success flag")}
	}
	return env, nil
}

// remoteError builds the error for an unsuccessful envelope.
func (e envelope) remoteError(fallback string) error {
	var msg string
	if len(e.Error) > 0 {
		_ = json.Unmarshal(e.Error, &msg)
	}
	if msg == "" {
		msg = fallback
	}
	return &RemoteError{Message: msg}
}

// records splits the data field into raw array elements. An absent or null
// data field is an empty list.
func (e envelope) records() ([]json.RawMessage, error) {
	if isNull(e.Data) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(e.Data, &items); err != nil {
		return nil, decodeError(err, "data is not an array")
	}
	return items, nil
}

func (e envelope) message() (string, error) {
	var msg string
	if isNull(e.Message) {
		return "", &DecodeError{Err: errors.New("envelope has no message")}
	}
	if err := json.Unmarshal(e.Message, &msg); err != nil {
		return "", decodeError(err, "message is not a string")
	}
	return msg, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
