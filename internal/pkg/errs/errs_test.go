package errs_test

import (
	"errors"
	"testing"

	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("fileNumber", "AF-0042")

		assert.Equal(t, "fileNumber", err.ParamName)
		assert.Equal(t, "AF-0042", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: AF-0042", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("order", "AF-0042", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: AF-0042 (cause: connection refused)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("cargoType")
	assert.Equal(t, "value is invalid: cargoType", err.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())

	cause := errors.New("unknown enum member")
	withCause := errs.NewValueIsInvalidErrorWithCause("cargoType", cause)
	assert.Equal(t, "value is invalid: cargoType (cause: unknown enum member)", withCause.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("idx", 0, 1, 100)

	assert.Equal(t, "idx", err.ParamName)
	assert.Equal(t, 0, err.Value)
	assert.Equal(t, "value is invalid: 0 is idx, min value is 1, max value is 100", err.Error())
	assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())

	t.Run("multi-line values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("route", "DAR\nTunduma", 0, 10)
		assert.Contains(t, err.Error(), "DAR Tunduma")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("department abbreviation")
	assert.Equal(t, "value is required: department abbreviation", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	cause := errors.New("no fallback source resolved")
	withCause := errs.NewValueIsRequiredErrorWithCause("department abbreviation", cause)
	assert.Equal(t,
		"value is required: department abbreviation (cause: no fallback source resolved)",
		withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("ownershipMode")
	assert.Equal(t, "version is invalid: ownershipMode", err.Error())
	assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order", "x"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("x", 5, 0, 4), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("x"), errs.ErrVersionIsInvalid)
}
