package utils

import (
	"mindfulness-service/internal/pkg/assessment"
	"mindfulness-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate             *validator.Validate
	specialCharRegex     = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseLetterRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	registrableUserRoles = map[string]bool{constvars.RoleStudent: true, constvars.RoleCounselor: true, constvars.RoleAdmin: true}
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("questionnaire_id", validateQuestionnaireID)
	validate.RegisterValidation("not_past_time", validateNotPastTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName reports fields by their wire name so messages match the request body.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	return hasMinLen && specialCharRegex.MatchString(password) && uppercaseLetterRegex.MatchString(password)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return registrableUserRoles[fl.Field().String()]
}

func validateQuestionnaireID(fl validator.FieldLevel) bool {
	_, err := assessment.DefaultEngine().Definition(assessment.QuestionnaireID(fl.Field().String()))
	return err == nil
}

func validateNotPastTime(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return value.After(time.Now())
}
