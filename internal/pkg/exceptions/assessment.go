package exceptions

import (
	"errors"
	"mindfulness-service/internal/pkg/assessment"
	"mindfulness-service/internal/pkg/constvars"
)

// ErrAssessmentScoring turns a scoring engine failure into a 400 with a
// message the student can act on. Unknown failures stay 500.
func ErrAssessmentScoring(err error) *CustomError {
	switch {
	case errors.Is(err, assessment.ErrInvalidQuestionnaireID):
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidQuestionnaireID, constvars.ErrDevInvalidQuestionnaireID)
	case errors.Is(err, assessment.ErrIncompleteResponses):
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientIncompleteResponses, constvars.ErrDevIncompleteResponses)
	case errors.Is(err, assessment.ErrResponseOutOfRange):
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientResponseOutOfRange, constvars.ErrDevResponseOutOfRange)
	}
	return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAssessmentScoring)
}
