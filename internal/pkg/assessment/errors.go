package assessment

import "errors"

var (
	ErrInvalidQuestionnaireID = errors.New("invalid questionnaire id")
	ErrIncompleteResponses    = errors.New("incomplete responses")
	ErrResponseOutOfRange     = errors.New("response out of range")
	ErrInvalidDefinition      = errors.New("invalid questionnaire definition")
)
