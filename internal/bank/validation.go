package bank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type registration struct {
	Name     string `validate:"required"`
	Password string `validate:"required"`
}

// validateRegistration checks the trimmed name and password.
func validateRegistration(name, password string) error {
	in := registration{
		Name:     strings.TrimSpace(name),
		Password: strings.TrimSpace(password),
	}

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrInvalidInput.WithCause(err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	if len(fields) == 1 {
		return ErrInvalidInput.WithCause(fmt.Errorf("%s is required", fields[0]))
	}
	return ErrInvalidInput.WithCause(fmt.Errorf("%s are required", strings.Join(fields, " and ")))
}
