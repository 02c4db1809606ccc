package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("signup: %w", NewValidationError("email", "cannot be blank"))

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrUnauthorized))

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "cannot be blank", verr.Fields["email"])
}

func TestValidationError_MessageIsStable(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"password": "values must match",
		"email":    "must be a valid email address",
	}}

	assert.Equal(t,
		"the given data was invalid (email: must be a valid email address; password: values must match)",
		err.Error(),
	)
}

func TestInvalidActivationToken_IsNotFound(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidActivationToken, ErrNotFound))
}
