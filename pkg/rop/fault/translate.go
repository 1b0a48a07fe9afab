package fault

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FromError converts any error into an *Error.
//
//   - nil => nil
//   - an *Error anywhere in the chain => returned as is (same pointer)
//   - context.Canceled / context.DeadlineExceeded => a KindCanceled error
//   - validator.ValidationErrors => FromValidation
//   - anything else => an internal fault carrying err.Error()
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return E(CodeTimeout, err.Error(),
			WithKind(KindCanceled), WithStatus(statusGatewayTimeout), WithCause(err))
	case errors.Is(err, context.Canceled):
		return E(CodeCanceled, err.Error(),
			WithKind(KindCanceled), WithStatus(statusClientClosed), WithCause(err))
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return FromValidation(err)
	}

	return E(CodeInternal, err.Error(),
		WithKind(KindFault), WithStatus(statusInternal), WithCause(err))
}

// FromRecovered converts a value obtained from recover() into an *Error.
func FromRecovered(v any) *Error {
	if v == nil {
		return nil
	}
	if err, ok := v.(error); ok {
		e := FromError(err)
		if e.Kind() == KindDomain || e.Kind() == KindCanceled {
			return e
		}
		return E(CodePanic, err.Error(),
			WithKind(KindFault), WithStatus(statusInternal), WithCause(err))
	}
	return E(CodePanic, fmt.Sprint(v), WithKind(KindFault), WithStatus(statusInternal))
}

// FromValidation turns validator field errors into a single domain error with
// one message per failed field, in the order the validator reported them.
func FromValidation(err error) *Error {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		var e *Error
		if errors.As(err, &e) {
			return e
		}
		return E(CodeInternal, err.Error(),
			WithKind(KindFault), WithStatus(statusInternal), WithCause(err))
	}

	messages := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s: failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag()))
	}

	return Must(CodeValidation, messages, WithStatus(statusBadRequest), WithCause(err))
}
