package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("ticket not found"), ErrorTypeNotFound, http.StatusNotFound},
		{"constraint", NewConstraintError("fk violated"), ErrorTypeConstraint, http.StatusConflict},
		{"storage", NewStorageError("disk gone"), ErrorTypeStorage, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_Error(t *testing.T) {
	err := NewValidationError("bad input")
	assert.Equal(t, "validation_error: bad input", err.Error())

	withDetails := NewNotFoundError("ticket not found", "id=42")
	assert.Equal(t, "not_found: ticket not found (id=42)", withDetails.Error())
}

func TestPredicates(t *testing.T) {
	notFound := NewNotFoundError("gone")

	assert.True(t, IsAppError(notFound))
	assert.True(t, IsNotFoundError(notFound))
	assert.False(t, IsValidationError(notFound))
	assert.False(t, IsConstraintViolation(notFound))

	plain := stderrors.New("plain")
	assert.False(t, IsAppError(plain))
	assert.False(t, IsNotFoundError(plain))
	assert.Nil(t, GetAppError(plain))
}

func TestPredicates_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("use case failed: %w", NewConstraintError("fk"))

	assert.True(t, IsConstraintViolation(wrapped))
	assert.Equal(t, ErrorTypeConstraint, GetAppError(wrapped).Type)
}

func TestIsStorageConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sqlite check", stderrors.New("CHECK constraint failed: status IN ('open','in_progress','closed')"), true},
		{"sqlite fk", stderrors.New("FOREIGN KEY constraint failed"), true},
		{"sqlite not null", stderrors.New("NOT NULL constraint failed: tickets.title"), true},
		{"generic constraint failed", stderrors.New("constraint failed"), true},
		{"postgres fk", stderrors.New("insert violates foreign key constraint"), true},
		{"unrelated", stderrors.New("database is locked"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStorageConstraintError(tt.err))
		})
	}
}
