package errors

import (
	"net/http"
	"testing"

	"kuttyport/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentityFields(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("locations[1].type: must be one of pickup dropoff")

	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", detailed.ErrorCode())
	assert.Equal(t, ErrValidationFailed.Message(), detailed.Message())
	assert.Equal(t, "locations[1].type: must be one of pickup dropoff", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessageIsMatchable(t *testing.T) {
	err := ErrSnapshotNotFound.WrapMessage("delivery KP-1")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SNAPSHOT_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrSnapshotNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "failed to save snapshot")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to save snapshot", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
