package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/token"
)

// Error represents a YAML error, optionally carrying the token or path where
// the problem occurred.
type Error struct {
	Err   error
	Token *token.Token
	Path  *yaml.Path
}

// NewError creates an [Error] wrapping err.
func NewError(err error, opts ...ErrorOpt) *Error {
	e := &Error{Err: err}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ErrorOpt configures an [Error].
type ErrorOpt func(e *Error)

// WithPath records the YAML path the error refers to.
func WithPath(path *yaml.Path) ErrorOpt {
	return func(e *Error) {
		e.Path = path
	}
}

// WithToken records the token the error refers to.
func WithToken(tk *token.Token) ErrorOpt {
	return func(e *Error) {
		e.Token = tk
	}
}

func (e Error) Error() string {
	switch {
	case e.Path != nil:
		return fmt.Sprintf("%s: %v", e.Path.String(), e.Err)

	case e.Token != nil:
		return fmt.Sprintf("line %d: %v", e.Token.Position.Line, e.Err)

	default:
		return e.Err.Error()
	}
}

func (e Error) Unwrap() error {
	return e.Err
}
