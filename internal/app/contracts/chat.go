package contracts

import (
	"context"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
)

type ChatGenerateInput struct {
	SystemInstruction string
	Messages          []requests.ChatMessage
}

type ChatGenerateOutput struct {
	Reply string
}

// ChatProvider is a large language model backend able to continue a
// conversation.
type ChatProvider interface {
	Name() string
	Configured() bool
	Generate(ctx context.Context, in *ChatGenerateInput) (*ChatGenerateOutput, error)
}

type ChatUsecase interface {
	Chat(ctx context.Context, request *requests.Chat) (*responses.ChatReply, error)
}
