package mediator

import "fmt"

// ArgumentError reports that a handler rejected its arguments. The invoker
// turns it into a tool-level result with the "Invalid arguments:" prefix so
// the calling model can correct itself and retry.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// NewArgumentError builds an ArgumentError with a formatted message.
func NewArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{Message: fmt.Sprintf(format, args...)}
}

// DomainError reports a declared business-logic failure from a handler,
// such as an upstream API rejecting a call. The invoker turns it into a
// tool-level result with the "Tool error:" prefix.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError builds a DomainError with a formatted message.
func NewDomainError(format string, args ...any) *DomainError {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}
