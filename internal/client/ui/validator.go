package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and flattens field errors into
// one readable message.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (x *Validator) Validate(i any) error {
	if err := x.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "numeric":
		return field + " must contain only digits"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// AnalyzeInput is the resume form. Fields are trimmed before validation.
type AnalyzeInput struct {
	JobDescription string `validate:"required"`
	ResumePath     string `validate:"required"`
}

func (in AnalyzeInput) normalize() AnalyzeInput {
	in.JobDescription = strings.TrimSpace(in.JobDescription)
	in.ResumePath = strings.TrimSpace(in.ResumePath)
	return in
}

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type SignupInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string
}

type VerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
}

type ProfileInput struct {
	Name     *string
	Password *string `validate:"omitempty,min=6"`
}
