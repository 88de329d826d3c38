package chat

import (
	"context"
	"errors"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/mocks"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestChatUsecase() (*chatUsecase, *mocks.MockChatProvider, *mocks.MockRedisRepository) {
	provider := new(mocks.MockChatProvider)
	redisRepository := new(mocks.MockRedisRepository)
	uc := &chatUsecase{
		Provider:        provider,
		RedisRepository: redisRepository,
		InternalConfig:  &config.InternalConfig{},
		Log:             zap.NewNop(),
	}
	return uc, provider, redisRepository
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	messages := []requests.ChatMessage{{Role: constvars.ChatRoleUser, Content: "I can't sleep before exams"}}

	t.Run("Provider Replies", func(t *testing.T) {
		uc, provider, redisRepository := newTestChatUsecase()
		provider.On("Configured").Return(true)
		provider.On("Generate", ctx, mock.MatchedBy(func(in *contracts.ChatGenerateInput) bool {
			return strings.HasSuffix(in.SystemInstruction, "Language: hi.") && len(in.Messages) == 1
		})).Return(&contracts.ChatGenerateOutput{Reply: "  Try a short breathing exercise.  "}, nil)
		redisRepository.On("Increment", ctx, mock.AnythingOfType("string")).Return(int64(1), nil)
		redisRepository.On("Expire", ctx, mock.AnythingOfType("string"), chatCounterRetention).Return(nil)

		reply, err := uc.Chat(ctx, &requests.Chat{Messages: messages, Lang: "hi"})

		require.NoError(t, err)
		assert.Equal(t, "Try a short breathing exercise.", reply.Reply)
		assert.False(t, reply.Degraded)
		redisRepository.AssertExpectations(t)
	})

	t.Run("Empty Reply", func(t *testing.T) {
		uc, provider, redisRepository := newTestChatUsecase()
		provider.On("Configured").Return(true)
		provider.On("Generate", ctx, mock.Anything).Return(&contracts.ChatGenerateOutput{Reply: ""}, nil)
		redisRepository.On("Increment", ctx, mock.AnythingOfType("string")).Return(int64(5), nil)

		reply, err := uc.Chat(ctx, &requests.Chat{Messages: messages})

		require.NoError(t, err)
		assert.Equal(t, constvars.ChatEmptyReply, reply.Reply)
		redisRepository.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Provider Failure Falls Back", func(t *testing.T) {
		uc, provider, redisRepository := newTestChatUsecase()
		provider.On("Configured").Return(true)
		provider.On("Generate", ctx, mock.Anything).Return(nil, errors.New("gemini: API returned 503"))
		redisRepository.On("Increment", ctx, mock.AnythingOfType("string")).Return(int64(2), nil)

		reply, err := uc.Chat(ctx, &requests.Chat{Messages: messages, Lang: "hi"})

		require.NoError(t, err)
		assert.True(t, reply.Degraded)
		assert.Equal(t, constvars.ChatFallbackReplies["hi"], reply.Reply)
	})

	t.Run("Counter Failure Does Not Block", func(t *testing.T) {
		uc, provider, redisRepository := newTestChatUsecase()
		provider.On("Configured").Return(true)
		provider.On("Generate", ctx, mock.Anything).Return(&contracts.ChatGenerateOutput{Reply: "ok"}, nil)
		redisRepository.On("Increment", ctx, mock.AnythingOfType("string")).Return(int64(0), errors.New("redis down"))

		reply, err := uc.Chat(ctx, &requests.Chat{Messages: messages})

		require.NoError(t, err)
		assert.Equal(t, "ok", reply.Reply)
	})

	t.Run("Missing API Key", func(t *testing.T) {
		uc, provider, redisRepository := newTestChatUsecase()
		provider.On("Configured").Return(false)

		reply, err := uc.Chat(ctx, &requests.Chat{Messages: messages})

		assert.Nil(t, reply)
		require.Error(t, err)
		provider.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		redisRepository.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything)
	})
}

func TestFallbackReply(t *testing.T) {
	assert.Equal(t, constvars.ChatFallbackReplies["en"], fallbackReply("fr"))
	assert.Equal(t, constvars.ChatFallbackReplies["hi"], fallbackReply("hi"))
}
