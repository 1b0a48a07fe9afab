package fault_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/svcresp/pkg/rop/fault"
)

func TestNew_RejectsEmptyMessages(t *testing.T) {
	t.Parallel()

	e, err := fault.New(fault.CodeNotFound, nil)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, fault.ErrNoMessages)

	e, err = fault.New(fault.CodeNotFound, []string{"", "  "})
	assert.Nil(t, e)
	assert.ErrorIs(t, err, fault.ErrNoMessages)

	assert.Panics(t, func() { fault.Must(fault.CodeNotFound, []string{}) })
}

func TestNew_Getters(t *testing.T) {
	t.Parallel()

	e, err := fault.New(fault.CodeNotFound, []string{"customer 42", "", "not found"},
		fault.WithStatus(404))
	require.NoError(t, err)

	assert.Equal(t, fault.CodeNotFound, e.Code())
	assert.Equal(t, []string{"customer 42", "not found"}, e.Messages())
	assert.Equal(t, "customer 42", e.Message())
	assert.Equal(t, fault.KindDomain, e.Kind())
	assert.False(t, e.IsRetryable())

	status, ok := e.StatusHint()
	assert.True(t, ok)
	assert.Equal(t, 404, status)
	assert.Equal(t, "not_found: customer 42; not found", e.Error())
}

func TestMessages_ReturnsCopy(t *testing.T) {
	t.Parallel()

	e := fault.E(fault.CodeConflict, "version mismatch")
	msgs := e.Messages()
	msgs[0] = "mutated"

	if e.Message() != "version mismatch" {
		t.Fatalf("Messages() leaked internal slice: %q", e.Message())
	}
}

func TestE_DefaultsAndOptions(t *testing.T) {
	t.Parallel()

	e := fault.E(fault.CodeTimeout, "")
	assert.Equal(t, []string{"timeout"}, e.Messages())
	assert.True(t, e.IsRetryable())
	_, ok := e.StatusHint()
	assert.False(t, ok)

	e = fault.E(fault.CodeValidation, "name: required",
		fault.WithMessages("age: min", " "),
		fault.WithClassification(fault.ClassificationRetryable))
	assert.Equal(t, []string{"name: required", "age: min"}, e.Messages())
	assert.True(t, e.IsRetryable())
}

func TestEqual_ComparesCodeAndMessages(t *testing.T) {
	t.Parallel()

	a := fault.E(fault.CodeNotFound, "missing", fault.WithStatus(404))
	b := fault.E(fault.CodeNotFound, "missing", fault.WithStatus(410))
	c := fault.E(fault.CodeNotFound, "other")
	d := fault.E(fault.CodeConflict, "missing")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))

	var n *fault.Error
	assert.True(t, n.Equal(nil))
	assert.Equal(t, "<nil>", n.Error())
}

func TestFromError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, fault.FromError(nil))

	domain := fault.E(fault.CodeForbidden, "no access")
	wrapped := fmt.Errorf("handler: %w", domain)
	assert.Same(t, domain, fault.FromError(wrapped))

	plain := errors.New("disk full")
	e := fault.FromError(plain)
	assert.Equal(t, fault.CodeInternal, e.Code())
	assert.Equal(t, fault.KindFault, e.Kind())
	assert.Equal(t, []string{"disk full"}, e.Messages())
	assert.ErrorIs(t, e, plain)

	c := fault.FromError(fmt.Errorf("wait: %w", context.Canceled))
	assert.Equal(t, fault.CodeCanceled, c.Code())
	assert.True(t, c.IsCanceled())
	status, _ := c.StatusHint()
	assert.Equal(t, 499, status)

	d := fault.FromError(context.DeadlineExceeded)
	assert.Equal(t, fault.CodeTimeout, d.Code())
	assert.True(t, d.IsCanceled())
	assert.True(t, d.IsRetryable())
}

func TestFromRecovered(t *testing.T) {
	t.Parallel()

	assert.Nil(t, fault.FromRecovered(nil))

	e := fault.FromRecovered("boom")
	assert.Equal(t, fault.CodePanic, e.Code())
	assert.Equal(t, fault.KindFault, e.Kind())
	assert.Equal(t, []string{"boom"}, e.Messages())

	cause := errors.New("nil map write")
	e = fault.FromRecovered(cause)
	assert.Equal(t, fault.CodePanic, e.Code())
	assert.ErrorIs(t, e, cause)

	domain := fault.E(fault.CodeNotFound, "gone")
	assert.Same(t, domain, fault.FromRecovered(domain))

	assert.True(t, fault.FromRecovered(context.Canceled).IsCanceled())
	assert.Equal(t, []string{"42"}, fault.FromRecovered(42).Messages())
}

type signup struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"gte=18"`
}

func TestFromValidation(t *testing.T) {
	t.Parallel()

	err := validator.New().Struct(signup{Email: "", Age: 10})
	require.Error(t, err)

	e := fault.FromValidation(err)
	assert.Equal(t, fault.CodeValidation, e.Code())
	assert.Equal(t, fault.KindDomain, e.Kind())
	assert.Equal(t, []string{"Email: failed on 'required'", "Age: failed on 'gte=18'"}, e.Messages())
	status, _ := e.StatusHint()
	assert.Equal(t, 400, status)

	// FromError routes validator errors the same way
	assert.True(t, e.Equal(fault.FromError(err)))

	assert.Nil(t, fault.FromValidation(nil))
	assert.Equal(t, fault.CodeInternal, fault.FromValidation(errors.New("x")).Code())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Domain", fault.KindDomain.String())
	assert.Equal(t, "Fault", fault.KindFault.String())
	assert.Equal(t, "Canceled", fault.KindCanceled.String())
	assert.Equal(t, "Unknown", fault.Kind(99).String())
}
