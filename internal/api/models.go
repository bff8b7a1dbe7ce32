package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Event is the boundary input. A missing request field decodes as "" and is
// rejected by the service, not here.
type Event struct {
	Request string `json:"request"`
}

// ErrMalformedEvent is returned by DecodeEvent for bodies that are not a JSON
// object.
var ErrMalformedEvent = errors.New("malformed event")

// DecodeEvent reads one JSON event from r. An empty body is the zero Event.
func DecodeEvent(r io.Reader) (Event, error) {
	var ev Event
	if err := json.NewDecoder(r).Decode(&ev); err != nil {
		if errors.Is(err, io.EOF) {
			return Event{}, nil
		}
		return Event{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	return ev, nil
}

// ExcuseResponse is the success body.
type ExcuseResponse struct {
	Excuse   string            `json:"excuse"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ErrorResponse is the failure body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// Result is the discriminated outcome of an invocation. Body is an
// ExcuseResponse when Status is 200 and an ErrorResponse otherwise.
type Result struct {
	Status int
	Body   interface{}
}

// OK reports whether the result is a success.
func (r Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}
