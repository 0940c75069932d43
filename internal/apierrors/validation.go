package apierrors

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Templates take the field name and the tag parameter, in that order.
var validationTemplates = map[string]string{
	"required": "%s is required",
	"max":      "%s must be at most %s characters",
	"min":      "%s must be at least %s characters",
	"gt":       "%s must be greater than %s",
	"gte":      "%s must be %s or more",
	"oneof":    "%s must be one of: %s",
	"e164":     "%s must be an E.164 phone number",
	"numeric":  "%s must be numeric",
}

// ValidationError builds a 400 APIError from validator field errors.
func ValidationError(validationErrs validator.ValidationErrors) *APIError {
	if len(validationErrs) == 0 {
		return BadRequest(CodeInvalidInput, "Invalid request")
	}

	parts := make([]string, len(validationErrs))
	for i, fieldErr := range validationErrs {
		parts[i] = describeFieldError(fieldErr)
	}
	if len(parts) == 1 {
		return BadRequest(CodeInvalidInput, parts[0])
	}
	return BadRequest(CodeInvalidInput, "Validation failed: "+strings.Join(parts, "; "))
}

func describeFieldError(fieldErr validator.FieldError) string {
	field := snakeCase(fieldErr.Field())
	tmpl, ok := validationTemplates[fieldErr.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed the %s check", field, fieldErr.Tag())
	}
	if strings.Count(tmpl, "%s") == 1 {
		return fmt.Sprintf(tmpl, field)
	}
	return fmt.Sprintf(tmpl, field, fieldErr.Param())
}

// snakeCase turns a Go field name into the JSON key clients sent,
// e.g. CandidateName -> candidate_name.
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
