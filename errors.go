package crikey

import (
	"errors"
	"fmt"
)

// ParseError indicates that a grammar entity, command shape, or message
// refused some input text. It carries only the name of the component that
// rejected the input, never a position or the offending text, following the
// convention that "a parser rejected the input" plus which parser is enough
// context for a caller.
type ParseError struct {
	Component string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid syntax", e.Component)
}

func newParseError(component string) error {
	return &ParseError{Component: component}
}

// IsParseError reports whether err is (or wraps, via github.com/pkg/errors)
// a ParseError for the named component. An empty component matches any
// ParseError.
func IsParseError(err error, component string) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	return component == "" || pe.Component == component
}
