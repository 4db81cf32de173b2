package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "house"}
		assert.Equal(t, "house not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "house"}
		err2 := &NotFoundError{Entity: "house"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "house"}
		err2 := &NotFoundError{Entity: "owner"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrHouseNotFound, ErrHouseNotFound))
		assert.False(t, errors.Is(ErrHouseNotFound, ErrOwnerNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrHouseNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrOwnerNotFound)))
		assert.False(t, IsNotFound(ErrOwnerExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "owner", Context: "with this username or email"}
		assert.Equal(t, "owner already exists with this username or email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "owner"}
		assert.Equal(t, "owner already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "owner", Context: "a"}
		err2 := &AlreadyExistsError{Entity: "owner", Context: "b"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrOwnerExists))
		assert.False(t, IsAlreadyExists(ErrHouseNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "phone", Message: "must be 10 digits"}
		assert.Equal(t, "validation error: phone - must be 10 digits", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrImageRequired))
		assert.True(t, IsValidation(fmt.Errorf("reset: %w", ErrInvalidResetToken)))
		assert.False(t, IsValidation(ErrHouseNotFound))
	})
}

func TestAuthenticationError(t *testing.T) {
	assert.Equal(t, "invalid username or password", ErrInvalidCredentials.Error())
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(NewAuthenticationError("nope")))
	assert.False(t, IsAuthentication(ErrImageRequired))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}
