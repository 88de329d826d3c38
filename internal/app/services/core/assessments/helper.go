package assessments

import (
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/assessment"
	"mindfulness-service/internal/pkg/dto/responses"
)

func toQuestionnaireResponse(definition *assessment.QuestionnaireDefinition) responses.Questionnaire {
	return responses.Questionnaire{
		ID:            string(definition.ID),
		Title:         definition.Title,
		Description:   definition.Description,
		Questions:     definition.Questions,
		AnswerOptions: assessment.AnswerOptions,
		SeverityBands: definition.SeverityBands,
		MaxScore:      definition.MaxScore(),
	}
}

func toAssessmentResult(result *assessment.Result) *responses.AssessmentResult {
	return &responses.AssessmentResult{
		QuestionnaireID: string(result.QuestionnaireID),
		TotalScore:      result.TotalScore,
		MaxScore:        result.MaxScore,
		Severity:        result.Severity,
		Interpretation:  result.Interpretation,
		WellnessScore:   result.WellnessScore,
		Crisis:          result.Crisis,
		CrisisResources: crisisHelplines(result.Crisis),
	}
}

func toAssessmentResponse(model *models.Assessment) *responses.Assessment {
	return &responses.Assessment{
		ID:          model.ID,
		StudentID:   model.StudentID,
		Responses:   model.Responses,
		CompletedAt: model.CompletedAt,
		AssessmentResult: responses.AssessmentResult{
			QuestionnaireID: model.QuestionnaireID,
			TotalScore:      model.TotalScore,
			MaxScore:        model.MaxScore,
			Severity:        model.Severity,
			Interpretation:  model.Interpretation,
			WellnessScore:   model.WellnessScore,
			Crisis:          model.Crisis,
			CrisisResources: crisisHelplines(model.Crisis),
		},
	}
}

func crisisHelplines(crisis bool) []assessment.Helpline {
	if !crisis {
		return nil
	}
	return assessment.CrisisHelplines
}

// dereferenceResponses copies a scored vector; every element is known to be
// answered once scoring succeeded.
func dereferenceResponses(values []*int) []int {
	result := make([]int, len(values))
	for i, value := range values {
		result[i] = *value
	}
	return result
}
