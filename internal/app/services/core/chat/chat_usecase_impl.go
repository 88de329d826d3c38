package chat

import (
	"context"
	"fmt"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"mindfulness-service/internal/pkg/exceptions"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Daily counters are read by analytics for the current day only.
const chatCounterRetention = 48 * time.Hour

type chatUsecase struct {
	Provider        contracts.ChatProvider
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	chatUsecaseInstance contracts.ChatUsecase
	onceChatUsecase     sync.Once
)

func NewChatUsecase(
	provider contracts.ChatProvider,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ChatUsecase {
	onceChatUsecase.Do(func() {
		chatUsecaseInstance = &chatUsecase{
			Provider:        provider,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return chatUsecaseInstance
}

func (uc *chatUsecase) Chat(ctx context.Context, request *requests.Chat) (*responses.ChatReply, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.Chat called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderKey, uc.Provider.Name()),
		zap.Int("messages", len(request.Messages)),
	)

	if !uc.Provider.Configured() {
		uc.Log.Error("chatUsecase.Chat provider is not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, uc.Provider.Name()),
		)
		return nil, exceptions.ErrChatAPIKeyMissing(nil)
	}

	lang := request.Lang
	if lang == "" {
		lang = constvars.ChatDefaultLang
	}

	uc.countMessage(ctx, requestID)

	output, err := uc.Provider.Generate(ctx, &contracts.ChatGenerateInput{
		SystemInstruction: fmt.Sprintf(constvars.ChatSystemInstructionFormat, lang),
		Messages:          request.Messages,
	})
	if err != nil {
		uc.Log.Warn("chatUsecase.Chat provider failed, replying with fallback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, uc.Provider.Name()),
			zap.Error(exceptions.ErrChatProvider(err)),
		)
		return &responses.ChatReply{Reply: fallbackReply(lang), Degraded: true}, nil
	}

	reply := strings.TrimSpace(output.Reply)
	if reply == "" {
		reply = constvars.ChatEmptyReply
	}

	uc.Log.Info("chatUsecase.Chat succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("reply_length", len(reply)),
	)
	return &responses.ChatReply{Reply: reply}, nil
}

// countMessage bumps today's usage counter. Failures never block the reply.
func (uc *chatUsecase) countMessage(ctx context.Context, requestID string) {
	key := fmt.Sprintf(constvars.RedisKeyChatCounterFormat, time.Now().UTC().Format(constvars.AnalyticsDayLayout))

	count, err := uc.RedisRepository.Increment(ctx, key)
	if err != nil {
		uc.Log.Warn("chatUsecase.countMessage error incrementing counter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return
	}
	if count == 1 {
		if err := uc.RedisRepository.Expire(ctx, key, chatCounterRetention); err != nil {
			uc.Log.Warn("chatUsecase.countMessage error setting counter expiry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}
}

func fallbackReply(lang string) string {
	if reply, ok := constvars.ChatFallbackReplies[lang]; ok {
		return reply
	}
	return constvars.ChatFallbackReplies[constvars.ChatDefaultLang]
}
