package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is matched by every [ValidationErrors].
	ErrValidation = errors.New("validation failed")
)

// ValidationError describes one failed rule of one field.
type ValidationError struct {
	// Field is the JSON name of the field, with the path for nested values
	// (e.g. "receiverEmails[1]").
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is returned when at least one rule failed.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, v := range e {
		messages = append(messages, v.Message)
	}
	return strings.Join(messages, "; ")
}

func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}
