package report

import (
	"bytes"
	"context"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/assessment"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderAssessmentReport(t *testing.T) {
	renderer := NewPDFReportRenderer(zap.NewNop())
	definition, err := assessment.DefaultEngine().Definition(assessment.PHQ9)
	require.NoError(t, err)

	t.Run("Renders Crisis Result", func(t *testing.T) {
		doc, err := renderer.RenderAssessmentReport(context.Background(), &contracts.RenderAssessmentReportInput{
			StudentName:  "Asha Verma",
			StudentEmail: "asha@example.edu",
			Definition:   definition,
			GeneratedAt:  time.Now(),
			Assessment: &models.Assessment{
				ID:              "6650f1b2c3d4e5f601234567",
				QuestionnaireID: string(assessment.PHQ9),
				Responses:       []int{3, 3, 3, 3, 3, 3, 3, 3, 3},
				TotalScore:      27,
				MaxScore:        27,
				Severity:        "severe",
				Interpretation:  "Severe depressive symptoms.",
				Crisis:          true,
				CompletedAt:     time.Now(),
			},
		})

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "output should be a pdf document")
	})

	t.Run("Short Response Vector Still Renders", func(t *testing.T) {
		doc, err := renderer.RenderAssessmentReport(context.Background(), &contracts.RenderAssessmentReportInput{
			Definition: definition,
			Assessment: &models.Assessment{Responses: []int{1}},
		})

		require.NoError(t, err)
		assert.NotEmpty(t, doc)
	})

	t.Run("Nil Input", func(t *testing.T) {
		doc, err := renderer.RenderAssessmentReport(context.Background(), &contracts.RenderAssessmentReportInput{})

		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrNilReportInput)
	})
}
