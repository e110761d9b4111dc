package errors

import (
	"net/http"
	"testing"

	"careadmin/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_FollowsWrappedChain(t *testing.T) {
	err := errors.Wrap(ErrDuplicate.WithDetails("name=chronic"), "create care_types")

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrDuplicate))

	appErr, ok := errors.Find[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "name=chronic", appErr.Details())
}

func TestKindOf_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.False(t, IsValidation(nil))
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to list")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
}

func TestAuthorizationKinds(t *testing.T) {
	assert.True(t, IsAuthorization(ErrForbidden))
	assert.True(t, IsAuthorization(errors.Wrap(ErrUnauthorized, "missing token")))
}
