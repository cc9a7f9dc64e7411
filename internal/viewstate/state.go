// Package viewstate holds the state of every client screen as an
// immutable snapshot: loading, a success carrying the screen data, or an
// error carrying the raw message.
package viewstate

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

var ErrUnknownStatus = errors.New("unknown view state status")

// State is one of three arms. Data is only present on the success arm and
// the message only on the error arm. The zero State is loading.
type State[T any] struct {
	status Status
	data   T
	err    string
}

func Loading[T any]() State[T] {
	return State[T]{status: StatusLoading}
}

func Success[T any](data T) State[T] {
	return State[T]{status: StatusSuccess, data: data}
}

// Failure wraps err into the error arm. A nil err still yields the error
// arm with an empty message.
func Failure[T any](err error) State[T] {
	s := State[T]{status: StatusError}
	if err != nil {
		s.err = err.Error()
	}
	return s
}

func (s State[T]) Status() Status {
	if s.status == "" {
		return StatusLoading
	}
	return s.status
}

// Data returns the payload and true on the success arm.
func (s State[T]) Data() (T, bool) {
	return s.data, s.status == StatusSuccess
}

// Err returns the message of the error arm.
func (s State[T]) Err() string {
	return s.err
}

type stateJSON[T any] struct {
	Status Status `json:"status"`
	Data   *T     `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (s State[T]) MarshalJSON() ([]byte, error) {
	out := stateJSON[T]{Status: s.Status()}
	switch out.Status {
	case StatusSuccess:
		out.Data = &s.data
	case StatusError:
		out.Error = s.err
	}
	return json.Marshal(out)
}

func (s *State[T]) UnmarshalJSON(b []byte) error {
	var in stateJSON[T]
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	switch in.Status {
	case StatusLoading, "":
		*s = Loading[T]()
	case StatusSuccess:
		var data T
		if in.Data != nil {
			data = *in.Data
		}
		*s = Success(data)
	case StatusError:
		*s = State[T]{status: StatusError, err: in.Error}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStatus, in.Status)
	}

	return nil
}
