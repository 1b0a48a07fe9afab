package fault

// Option configures an Error during construction.
type Option func(*Error)

// WithStatus sets the protocol status hint (for example an HTTP status).
func WithStatus(status int) Option {
	return func(e *Error) {
		e.status = status
		e.hasStatus = true
	}
}

func WithKind(kind Kind) Option { return func(e *Error) { e.kind = kind } }

// WithClassification overrides the classification derived from the code.
func WithClassification(c Classification) Option {
	return func(e *Error) { e.classification = c }
}

// WithCause sets the underlying cause returned by Unwrap.
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }

// WithMessages appends further messages; blank ones are ignored.
func WithMessages(messages ...string) Option {
	return func(e *Error) { e.messages = append(e.messages, compact(messages)...) }
}
