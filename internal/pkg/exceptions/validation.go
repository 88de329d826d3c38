package exceptions

import (
	"errors"
	"mindfulness-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Tags whose message already names the field.
var standaloneMessageTags = map[string]bool{
	"not_past_time": true,
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return formatFieldError(validationErrors[0])
	}
	return constvars.ErrDevInvalidInput
}

func formatFieldError(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if ok && standaloneMessageTags[tag] {
		return customMessage
	}
	if !ok {
		customMessage = "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", strings.ToLower(fieldErr.Param()), 1)
		}
	}
	return strings.ToLower(fieldErr.Field()) + " " + customMessage
}
