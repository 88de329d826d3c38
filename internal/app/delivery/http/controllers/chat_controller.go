package controllers

import (
	"context"
	"fmt"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/exceptions"
	"mindfulness-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ChatController throttles callers before handing the conversation to the
// usecase. Signed-in users are limited by user id, guests by client IP.
type ChatController struct {
	Log            *zap.Logger
	ChatUsecase    contracts.ChatUsecase
	Limiter        contracts.ResourceLimiter
	InternalConfig *config.InternalConfig
}

var (
	chatControllerInstance *ChatController
	onceChatController     sync.Once
)

func NewChatController(logger *zap.Logger, chatUsecase contracts.ChatUsecase, limiter contracts.ResourceLimiter, internalConfig *config.InternalConfig) *ChatController {
	onceChatController.Do(func() {
		chatControllerInstance = &ChatController{
			Log:            logger,
			ChatUsecase:    chatUsecase,
			Limiter:        limiter,
			InternalConfig: internalConfig,
		}
	})
	return chatControllerInstance
}

func (ctrl *ChatController) Chat(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	// Bind body to request
	request := new(requests.Chat)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeChatRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	request.ClientKey = chatClientKey(r)

	eval, err := ctrl.Limiter.ApplyResourceLimiter(r.Context(), &contracts.ApplyResourceLimiterInput{
		ResourceName:      request.ClientKey,
		LimiterGroupName:  constvars.LimiterGroupChat,
		WindowDurationSec: ctrl.InternalConfig.Chat.RateLimitWindowSecond,
		MaxQuota:          ctrl.InternalConfig.Chat.RateLimit,
		NowUTC:            time.Now().UTC(),
	})
	if err != nil {
		ctrl.Log.Error("ChatController.Chat error applying resource limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if !eval.Allowed {
		retryAfter := eval.RetryAfterSecs
		if retryAfter < 0 {
			retryAfter = 0
		}
		utils.LogSecurityEvent(ctrl.Log, "chat_rate_limited", requestID,
			zap.String(constvars.LoggingRemoteAddrKey, utils.GetClientIP(r)),
		)
		w.Header().Set(constvars.HeaderRetryAfter, fmt.Sprintf("%d", retryAfter))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTooManyRequests(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ChatUsecase.Chat(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatReplySuccessMessage, result)
}

func chatClientKey(r *http.Request) string {
	if userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string); ok && userID != "" {
		return "user:" + userID
	}
	return "ip:" + utils.GetClientIP(r)
}
