package fault

// Code identifies an error condition. Codes are stable strings so they read
// well in logs and encode naturally.
type Code string

const (
	CodeInternal     Code = "internal.error"
	CodePanic        Code = "panic"
	CodeNotFound     Code = "not_found"
	CodeValidation   Code = "validation.failed"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeUnavailable  Code = "unavailable"
	CodeTimeout      Code = "timeout"
	CodeCanceled     Code = "canceled"
	CodeTypeMismatch Code = "type_mismatch"
)

// Kind tells how an Error came to be.
type Kind int

const (
	// KindDomain is an error built on purpose by business or validation logic.
	KindDomain Kind = iota
	// KindFault is an unexpected fault translated by a combinator.
	KindFault
	// KindCanceled is a cancelled or expired context.
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindDomain:
		return "Domain"
	case KindFault:
		return "Fault"
	case KindCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Classification indicates whether a caller may retry the failed operation.
// The core itself never retries.
type Classification string

const (
	ClassificationRetryable Classification = "RETRYABLE"
	ClassificationPermanent Classification = "PERMANENT"
)

func (c Classification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[Code]Classification{
	CodeTimeout:     ClassificationRetryable,
	CodeUnavailable: ClassificationRetryable,
}

func defaultClassification(code Code) Classification {
	if c, ok := defaultClassifications[code]; ok {
		return c
	}
	return ClassificationPermanent
}

// status hints used by the translation constructors
const (
	statusBadRequest     = 400
	statusClientClosed   = 499
	statusInternal       = 500
	statusGatewayTimeout = 504
)
