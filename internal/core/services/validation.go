package services

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

func validateSignup(in ports.SignupInput) error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&in.Email, validation.Required, validation.Length(3, 255), is.EmailFormat),
		validation.Field(&in.Password,
			validation.Required,
			validation.Length(1, maxPasswordBytes),
			validation.By(confirmedBy(in.PasswordConfirmation)),
		),
	)
	return toValidationError(err)
}

func validateLogin(in ports.LoginInput) error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.Password, validation.Required),
	)
	return toValidationError(err)
}

func confirmedBy(confirmation string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != confirmation {
			return errors.New("the password confirmation does not match")
		}
		return nil
	}
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		fields[field] = fieldErr.Error()
	}
	return &domain.ValidationError{Fields: fields}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
