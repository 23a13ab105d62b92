package session

import (
	"errors"
	"strings"

	"MedSyncAI/internal/models"

	"github.com/go-playground/validator/v10"
)

const MinPasswordLength = 6

// SignUpInput is the sign-up form as submitted.
type SignUpInput struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string
	FullName        string `validate:"required"`
	Gender          string `validate:"required,oneof=male female non-binary prefer-not-to-say"`
	DateOfBirth     string `validate:"omitempty,datetime=2006-01-02"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var fieldMessages = map[string]string{
	"Email":       "please enter a valid email address",
	"Password":    "please enter a password",
	"FullName":    "please enter your full name",
	"Gender":      "please select your gender",
	"DateOfBirth": "date of birth must be a valid date",
}

// Validate checks the form in the same order the sign-up page reports problems.
func (in SignUpInput) Validate() error {
	if in.Password != in.ConfirmPassword {
		return &ValidationError{Field: "ConfirmPassword", Message: "passwords do not match"}
	}
	if len(in.Password) < MinPasswordLength {
		return &ValidationError{Field: "Password", Message: "password must be at least 6 characters"}
	}
	if strings.TrimSpace(in.Gender) == "" {
		return &ValidationError{Field: "Gender", Message: "please select your gender"}
	}

	trimmed := in
	trimmed.Email = strings.TrimSpace(in.Email)
	trimmed.FullName = strings.TrimSpace(in.FullName)
	trimmed.DateOfBirth = strings.TrimSpace(in.DateOfBirth)

	if err := validate.Struct(trimmed); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			field := fieldErrs[0].Field()
			return &ValidationError{Field: field, Message: fieldMessages[field]}
		}
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

// ProfileFields is the part of the sign-up form that becomes the Profile.
type ProfileFields struct {
	FullName    string
	Gender      models.Gender
	DateOfBirth string
}

func (in SignUpInput) profileFields() ProfileFields {
	return ProfileFields{
		FullName:    strings.TrimSpace(in.FullName),
		Gender:      models.Gender(in.Gender),
		DateOfBirth: strings.TrimSpace(in.DateOfBirth),
	}
}
