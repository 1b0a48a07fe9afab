package fault

import (
	"errors"
	"slices"
	"strings"
)

// ErrNoMessages is returned by New when no non-blank message is given.
var ErrNoMessages = errors.New("fault: at least one message is required")

// Error describes a failure. It is immutable once built and safe to share
// between goroutines.
type Error struct {
	code           Code
	messages       []string
	status         int
	hasStatus      bool
	kind           Kind
	classification Classification
	cause          error
}

// New builds an Error from a code and its messages. Blank messages are
// dropped; if none remain ErrNoMessages is returned.
func New(code Code, messages []string, opts ...Option) (*Error, error) {
	msgs := compact(messages)
	if len(msgs) == 0 {
		return nil, ErrNoMessages
	}

	e := &Error{
		code:           code,
		messages:       msgs,
		kind:           KindDomain,
		classification: defaultClassification(code),
	}
	for _, o := range opts {
		o(e)
	}

	return e, nil
}

// Must is like New but panics when the message list is empty.
func Must(code Code, messages []string, opts ...Option) *Error {
	e, err := New(code, messages, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// E is the one-message builder. A blank message falls back to the code text.
func E(code Code, message string, opts ...Option) *Error {
	if strings.TrimSpace(message) == "" {
		message = string(code)
	}
	return Must(code, []string{message}, opts...)
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return string(e.code) + ": " + strings.Join(e.messages, "; ")
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Code() Code                     { return e.code }
func (e *Error) Kind() Kind                     { return e.kind }
func (e *Error) Classification() Classification { return e.classification }
func (e *Error) Cause() error                   { return e.cause }

// Messages returns a copy of the ordered messages.
func (e *Error) Messages() []string {
	return slices.Clone(e.messages)
}

// Message returns the first message.
func (e *Error) Message() string {
	return e.messages[0]
}

// StatusHint returns the protocol status hint, if one was set.
func (e *Error) StatusHint() (int, bool) {
	return e.status, e.hasStatus
}

func (e *Error) IsRetryable() bool {
	return e.classification.IsRetryable()
}

func (e *Error) IsCanceled() bool {
	return e != nil && e.kind == KindCanceled
}

// Equal reports whether both errors carry the same code and messages.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.code == other.code && slices.Equal(e.messages, other.messages)
}

func compact(messages []string) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		if strings.TrimSpace(m) != "" {
			out = append(out, m)
		}
	}
	return out
}
