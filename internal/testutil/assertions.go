package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bookkeeper/internal/errors"
)

// AssertAppError requires err to be an *AppError carrying code.
func AssertAppError(t *testing.T, err error, code string) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr, "want AppError %s", code)
	assert.Equal(t, code, appErr.Code, "message: %s", appErr.Message)
	return appErr
}

// AssertNoError stops the test on a non-nil err.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	require.NoError(t, err)
}

// AssertCents fails unless want and got agree to the cent.
func AssertCents(t *testing.T, want, got float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want, got, 0.001, msgAndArgs...)
}
