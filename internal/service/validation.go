package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
)

type fieldRule struct {
	key     string
	message string
}

// toValidationError flattens validator errors into form-keyed messages.
func toValidationError(err error, rules map[string]fieldRule) *appErrors.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid form")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key, message := fe.Field(), fe.Tag()
		if rule, ok := rules[fe.StructField()]; ok {
			key, message = rule.key, rule.message
		}
		if _, exists := fields[key]; !exists {
			fields[key] = message
		}
	}
	validationErr := appErrors.Validation(fields)
	validationErr.Err = err
	return validationErr
}
