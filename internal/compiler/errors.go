package compiler

import "fmt"

// ErrorKind classifies token resolution failures.
type ErrorKind int

const (
	// ErrUnknownUtility means no registered parser matched the base name.
	// Callers decide whether this is fatal; by default it is a warning.
	ErrUnknownUtility ErrorKind = iota
	// ErrInvalidValue means the value component failed validation:
	// out-of-scale index, malformed arbitrary literal, or opacity
	// outside 0-100.
	ErrInvalidValue
	// ErrUnknownModifier means a modifier segment matched no variant.
	ErrUnknownModifier
	// ErrEmptyToken means the token had no base-name component.
	ErrEmptyToken
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownUtility:
		return "unknown utility"
	case ErrInvalidValue:
		return "invalid value"
	case ErrUnknownModifier:
		return "unknown modifier"
	case ErrEmptyToken:
		return "empty token"
	}
	return "unknown error"
}

// Error is a token resolution failure. It always carries the raw token
// so callers can point diagnostics at the offending source text.
type Error struct {
	Kind   ErrorKind
	Token  string // raw token as it appeared in source
	Detail string // optional context, e.g. the bad segment
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s in %q: %s", e.Kind, e.Token, e.Detail)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Token)
}

// resolutionError builds an *Error for token with the given kind.
func resolutionError(kind ErrorKind, token, detail string) *Error {
	return &Error{Kind: kind, Token: token, Detail: detail}
}
