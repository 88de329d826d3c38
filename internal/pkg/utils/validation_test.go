package utils

import (
	"testing"
	"time"

	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	validRegister := func() requests.RegisterUser {
		return requests.RegisterUser{
			Name:           "Asha Verma",
			Email:          "asha@campus.edu",
			Username:       "ashav",
			Password:       "Secret#123",
			RetypePassword: "Secret#123",
			Role:           "student",
		}
	}

	t.Run("Valid Registration", func(t *testing.T) {
		request := validRegister()
		assert.NoError(t, ValidateStruct(&request))
	})

	t.Run("Weak Password", func(t *testing.T) {
		request := validRegister()
		request.Password = "secret123"
		request.RetypePassword = "secret123"

		assert.Error(t, ValidateStruct(&request), "password without uppercase and special char should fail")
	})

	t.Run("Unknown Role", func(t *testing.T) {
		request := validRegister()
		request.Role = "teacher"

		assert.Error(t, ValidateStruct(&request))
	})

	t.Run("Unknown Questionnaire", func(t *testing.T) {
		request := requests.ScoreAssessment{QuestionnaireID: "bdi-2", Responses: []*int{}}

		assert.Error(t, ValidateStruct(&request))
	})

	t.Run("Known Questionnaire", func(t *testing.T) {
		request := requests.ScoreAssessment{QuestionnaireID: "gad-7", Responses: []*int{}}

		assert.NoError(t, ValidateStruct(&request))
	})

	t.Run("Appointment In The Past", func(t *testing.T) {
		request := requests.BookAppointment{CounselorID: "abc", StartsAt: time.Now().Add(-time.Hour)}

		assert.Error(t, ValidateStruct(&request))
	})

	t.Run("Appointment In The Future", func(t *testing.T) {
		request := requests.BookAppointment{CounselorID: "abc", StartsAt: time.Now().Add(time.Hour)}

		assert.NoError(t, ValidateStruct(&request))
	})

	t.Run("Login Needs Email Or Username", func(t *testing.T) {
		request := requests.LoginUser{Password: "x"}

		assert.Error(t, ValidateStruct(&request))
	})

	t.Run("Messages Use Wire Field Names", func(t *testing.T) {
		request := requests.ScoreAssessment{QuestionnaireID: "bdi-2", Responses: []*int{}}

		message := exceptions.FormatFirstValidationError(ValidateStruct(&request))

		assert.Equal(t, "questionnaire_id must be one of the following: phq-9, gad-7, ghq-12", message)
	})

	t.Run("Query Filter Uses Wire Field Name", func(t *testing.T) {
		request := requests.QueryAssessments{QuestionnaireID: "bdi-2"}

		message := exceptions.FormatFirstValidationError(ValidateStruct(&request))

		assert.Equal(t, "questionnaire_id must be one of the following: phq-9, gad-7, ghq-12", message)
	})

	t.Run("Retype Password Keeps Struct Comparison", func(t *testing.T) {
		request := validRegister()
		request.RetypePassword = "Other#123"

		message := exceptions.FormatFirstValidationError(ValidateStruct(&request))

		assert.Contains(t, message, "retype_password")
	})
}
