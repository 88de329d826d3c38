package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/pkg/assessment"
	"mindfulness-service/internal/pkg/constvars"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

var ErrNilReportInput = errors.New("report: assessment and definition are required")

const (
	reportFont       = "Arial"
	reportTimeLayout = "02 Jan 2006 15:04 MST"
	reportDisclaimer = "This report summarises a self-administered screening questionnaire. It is not a diagnosis. Please discuss the result with a counselor."
)

type pdfReportRenderer struct {
	Log *zap.Logger
}

func NewPDFReportRenderer(logger *zap.Logger) contracts.ReportRenderer {
	return &pdfReportRenderer{Log: logger}
}

func (r *pdfReportRenderer) RenderAssessmentReport(ctx context.Context, in *contracts.RenderAssessmentReportInput) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if in == nil || in.Assessment == nil || in.Definition == nil {
		return nil, ErrNilReportInput
	}
	r.Log.Info("pdfReportRenderer.RenderAssessmentReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, in.Assessment.ID),
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("MindFulness assessment report", true)
	pdf.SetAuthor("MindFulness", true)
	pdf.AddPage()

	pdf.SetFont(reportFont, "B", 18)
	pdf.Cell(0, 10, tr(in.Definition.Title))
	pdf.Ln(12)

	pdf.SetFont(reportFont, "", 11)
	writeField(pdf, tr, "Student", in.StudentName)
	writeField(pdf, tr, "Email", in.StudentEmail)
	writeField(pdf, tr, "Completed at", in.Assessment.CompletedAt.Format(reportTimeLayout))
	writeField(pdf, tr, "Generated at", in.GeneratedAt.Format(reportTimeLayout))
	pdf.Ln(4)

	pdf.SetFont(reportFont, "B", 13)
	pdf.Cell(0, 8, "Result")
	pdf.Ln(9)
	pdf.SetFont(reportFont, "", 11)
	writeField(pdf, tr, "Total score", fmt.Sprintf("%d / %d", in.Assessment.TotalScore, in.Assessment.MaxScore))
	writeField(pdf, tr, "Severity", in.Assessment.Severity)
	writeField(pdf, tr, "Wellness score", strconv.Itoa(in.Assessment.WellnessScore))
	pdf.MultiCell(0, 6, tr(in.Assessment.Interpretation), "", "L", false)
	pdf.Ln(4)

	if in.Assessment.Crisis {
		pdf.SetTextColor(180, 0, 0)
		pdf.SetFont(reportFont, "B", 11)
		pdf.MultiCell(0, 6, "If you are in immediate danger please reach out now:", "", "L", false)
		pdf.SetFont(reportFont, "", 11)
		for _, helpline := range assessment.CrisisHelplines {
			pdf.Cell(0, 6, tr(fmt.Sprintf("%s: %s", helpline.Name, helpline.Number)))
			pdf.Ln(6)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	pdf.SetFont(reportFont, "B", 13)
	pdf.Cell(0, 8, "Responses")
	pdf.Ln(9)
	pdf.SetFont(reportFont, "", 10)
	for i, question := range in.Definition.Questions {
		answer := "-"
		if i < len(in.Assessment.Responses) {
			answer = answerLabel(in.Assessment.Responses[i])
		}
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s", i+1, question)), "", "L", false)
		pdf.SetFont(reportFont, "I", 10)
		pdf.Cell(0, 5, tr(answer))
		pdf.Ln(7)
		pdf.SetFont(reportFont, "", 10)
	}

	pdf.Ln(4)
	pdf.SetFont(reportFont, "I", 9)
	pdf.MultiCell(0, 5, reportDisclaimer, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.Log.Error("pdfReportRenderer.RenderAssessmentReport error rendering pdf",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	r.Log.Info("pdfReportRenderer.RenderAssessmentReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("size_bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

func writeField(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont(reportFont, "B", 11)
	pdf.CellFormat(40, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont(reportFont, "", 11)
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}

func answerLabel(value int) string {
	for _, option := range assessment.AnswerOptions {
		if option.Value == value {
			return fmt.Sprintf("%s (%d)", option.Label, value)
		}
	}
	return strconv.Itoa(value)
}
