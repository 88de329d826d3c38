package utils

import (
	"mindfulness-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.Join(strings.Fields(input.Name), " ")
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Username = strings.TrimSpace(strings.ToLower(input.Username))
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Username = strings.TrimSpace(strings.ToLower(input.Username))
}

func SanitizeScoreAssessmentRequest(input *requests.ScoreAssessment) {
	input.QuestionnaireID = strings.TrimSpace(strings.ToLower(input.QuestionnaireID))
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.CounselorID = strings.TrimSpace(input.CounselorID)
	input.StudentID = strings.TrimSpace(input.StudentID)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeChatRequest(input *requests.Chat) {
	input.Lang = strings.TrimSpace(strings.ToLower(input.Lang))
	for i := range input.Messages {
		input.Messages[i].Role = strings.TrimSpace(strings.ToLower(input.Messages[i].Role))
		input.Messages[i].Content = strings.TrimSpace(input.Messages[i].Content)
	}
}

func SanitizeSubmitFeedbackRequest(input *requests.SubmitFeedback) {
	input.Message = strings.TrimSpace(input.Message)
	input.Category = strings.TrimSpace(strings.ToLower(input.Category))
	if input.Category == "" {
		input.Category = "general"
	}
}
