package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP error mapper
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindDomainRule
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindDomainRule:
		return "domain_rule"
	default:
		return "internal"
	}
}

// Error is a user-facing failure. Message is safe to return to clients,
// Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Code so wrapped copies still compare equal to their sentinel
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap returns a copy of e carrying cause
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: e.Message, Err: cause}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func DomainRule(code, message string) *Error {
	return &Error{Kind: KindDomainRule, Code: code, Message: message}
}

// KindOf returns KindInternal for anything that is not an *Error
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
