package llm

import "fmt"

type ErrKind string

const (
	// ErrConfig: the client has no API key and cannot make any call.
	ErrConfig ErrKind = "config"
	// ErrRequest: the completion call itself failed (network, non-200).
	ErrRequest ErrKind = "request"
	// ErrResponse: the call succeeded but the body was unusable.
	ErrResponse ErrKind = "response"
)

// Error carries a failure kind alongside its detail so the routing layer
// decides how much to expose, instead of the client baking error text into
// a fake answer.
type Error struct {
	Kind   ErrKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Result is the outcome of one completion call. Err is nil on success.
type Result struct {
	Text string
	Err  *Error
}

func Ok(text string) Result {
	return Result{Text: text}
}

func Errf(kind ErrKind, format string, args ...any) Result {
	return Result{Err: &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}}
}
