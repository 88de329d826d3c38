package utils

import (
	"mindfulness-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email And Username Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:     "  Asha   Verma ",
			Email:    "  ASHA@CAMPUS.EDU  ",
			Username: " AshaV ",
			Role:     " Student ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Asha Verma", request.Name, "name should collapse inner whitespace")
		assert.Equal(t, "asha@campus.edu", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "ashav", request.Username, "username should be lowercase and trimmed")
		assert.Equal(t, "student", request.Role, "role should be lowercase and trimmed")
	})
}

func TestSanitizeChatRequest(t *testing.T) {
	t.Run("Messages Are Trimmed", func(t *testing.T) {
		request := &requests.Chat{
			Lang: " HI ",
			Messages: []requests.ChatMessage{
				{Role: " User ", Content: "  I feel anxious  "},
			},
		}

		SanitizeChatRequest(request)

		assert.Equal(t, "hi", request.Lang)
		assert.Equal(t, "user", request.Messages[0].Role)
		assert.Equal(t, "I feel anxious", request.Messages[0].Content)
	})
}

func TestSanitizeSubmitFeedbackRequest(t *testing.T) {
	t.Run("Empty Category Defaults To General", func(t *testing.T) {
		request := &requests.SubmitFeedback{Rating: 4, Message: " helpful "}

		SanitizeSubmitFeedbackRequest(request)

		assert.Equal(t, "general", request.Category)
		assert.Equal(t, "helpful", request.Message)
	})
}
