package errors

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneKeepsIdentity(t *testing.T) {
	err := Clone(ErrNotFound, "teacher not found")
	assert.Equal(t, "teacher not found", err.Message)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "resource not found", ErrNotFound.Message)
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	appErr := FromError(sql.ErrConnDone)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.ErrorIs(t, appErr, sql.ErrConnDone)
	assert.Nil(t, FromError(nil))
}

func TestValidationCarriesFields(t *testing.T) {
	err := Validation(map[string]string{"client_name": "required"})
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "required", err.Fields["client_name"])
	assert.Nil(t, ErrValidation.Fields)
}

func TestSecurityCheckIsBadRequestNotValidation(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrSecurityCheck.Status)
	assert.Equal(t, "SECURITY_CHECK", ErrSecurityCheck.Code)
	assert.False(t, errors.Is(ErrSecurityCheck, ErrValidation))
}
