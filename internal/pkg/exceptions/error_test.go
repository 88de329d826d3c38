package exceptions

import (
	"errors"
	"fmt"
	"mindfulness-service/internal/pkg/assessment"
	"mindfulness-service/internal/pkg/constvars"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Plain Error Is Wrapped", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrMongoDBFindDocument(cause)

		assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
		assert.Contains(t, err.DevMessage, "connection refused")
		assert.ErrorIs(t, err, cause, "cause should stay reachable through errors.Is")
		assert.Len(t, err.Locations, 1)
	})

	t.Run("Nil Error Keeps Dev Message", func(t *testing.T) {
		err := ErrTokenMissing(nil)

		assert.Equal(t, constvars.ErrDevAuthTokenMissing, err.DevMessage)
		assert.Equal(t, constvars.StatusUnauthorized, err.StatusCode)
	})

	t.Run("Nested Custom Error Carries Locations", func(t *testing.T) {
		inner := ErrRedisGet(errors.New("timeout"))
		outer := ErrServerProcess(inner)

		assert.Len(t, outer.Locations, 2, "both locations should be kept")
		assert.Contains(t, outer.DevMessage, constvars.ErrDevRedisGetData)
	})
}

func TestErrAssessmentScoring(t *testing.T) {
	cases := []struct {
		name          string
		err           error
		statusCode    int
		clientMessage string
	}{
		{"Invalid Questionnaire", fmt.Errorf("%w: x", assessment.ErrInvalidQuestionnaireID), constvars.StatusBadRequest, constvars.ErrClientInvalidQuestionnaireID},
		{"Incomplete Responses", fmt.Errorf("%w: x", assessment.ErrIncompleteResponses), constvars.StatusBadRequest, constvars.ErrClientIncompleteResponses},
		{"Out Of Range", fmt.Errorf("%w: x", assessment.ErrResponseOutOfRange), constvars.StatusBadRequest, constvars.ErrClientResponseOutOfRange},
		{"Unknown Failure", errors.New("boom"), constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ErrAssessmentScoring(tc.err)

			assert.Equal(t, tc.statusCode, err.StatusCode)
			assert.Equal(t, tc.clientMessage, err.ClientMessage)
		})
	}
}

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	type input struct {
		Name   string `validate:"required"`
		Rating int    `validate:"gte=1,lte=5"`
		Kind   string `validate:"oneof=bug idea"`
	}

	t.Run("Required Field", func(t *testing.T) {
		err := validate.Struct(input{Rating: 3, Kind: "bug"})

		assert.Equal(t, "name is required", FormatFirstValidationError(err))
	})

	t.Run("Param Is Substituted", func(t *testing.T) {
		err := validate.Struct(input{Name: "a", Rating: 9, Kind: "bug"})

		assert.Equal(t, "rating must be less than or equal to 5", FormatFirstValidationError(err))
	})

	t.Run("Oneof Lists Options", func(t *testing.T) {
		err := validate.Struct(input{Name: "a", Rating: 1, Kind: "other"})

		assert.Equal(t, "kind must be one of the following: bug, idea", FormatFirstValidationError(err))
	})

	t.Run("Non Validation Error", func(t *testing.T) {
		assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("x")))
	})
}
