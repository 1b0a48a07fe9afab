package rop

import (
	"time"

	"github.com/ib-77/svcresp/pkg/rop/fault"
)

type DataProvider[T any] interface {
	// Data returns the value of a data response
	Data() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that hold either data or an error
type WithError[T any] interface {
	DataProvider[T]
	// Err returns the error of an error response, nil otherwise
	Err() *fault.Error
	// IsLeft returns true for an error response
	IsLeft() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

var _ WithCancel[int] = ServiceResponse[int]{}
