package dto

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	tenantDatePattern  = regexp.MustCompile(`^\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4}$`)
	periodTokenPattern = regexp.MustCompile(`^(\d{4}([-/]\d{1,2})?|\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4})$`)
)

// RegisterValidators installs the custom binding tags used by the request DTOs.
// Calendar checks happen later against the tenant's format; these tags only reject
// strings that cannot be a date or a period at all.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("tenant_date", validateTenantDate); err != nil {
		return err
	}
	return v.RegisterValidation("period_token", validatePeriodToken)
}

func validateTenantDate(fl validator.FieldLevel) bool {
	return tenantDatePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validatePeriodToken(fl validator.FieldLevel) bool {
	token := strings.TrimSpace(fl.Field().String())
	if from, to, ok := strings.Cut(token, ".."); ok {
		return tenantDatePattern.MatchString(from) && tenantDatePattern.MatchString(to)
	}
	return periodTokenPattern.MatchString(token)
}

// ProcessValidationErrors maps each failing field to the tag it failed.
// Errors that are not validator errors yield nil.
func ProcessValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	errorResponse := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}
	return errorResponse
}
