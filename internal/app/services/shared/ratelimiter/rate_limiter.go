package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/pkg/constvars"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultWindowDurationSec = 60

var ErrNilLimiterInput = errors.New("nil limiter input")

var (
	resourceLimiterInstance contracts.ResourceLimiter
	onceResourceLimiter     sync.Once
)

// resourceLimiter is a fixed-window counter kept in redis. Each window has
// its own key that expires one second after the window closes.
type resourceLimiter struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewResourceLimiter(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.ResourceLimiter {
	onceResourceLimiter.Do(func() {
		resourceLimiterInstance = &resourceLimiter{
			RedisRepository: redisRepository,
			Log:             logger,
		}
	})
	return resourceLimiterInstance
}

func (l *resourceLimiter) ApplyResourceLimiter(ctx context.Context, in *contracts.ApplyResourceLimiterInput) (*contracts.ApplyResourceLimiterOutput, error) {
	if in == nil {
		return &contracts.ApplyResourceLimiterOutput{Allowed: false}, ErrNilLimiterInput
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))

	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = defaultWindowDurationSec
	}
	if in.MaxQuota <= 0 {
		return &contracts.ApplyResourceLimiterOutput{Allowed: true}, nil
	}
	if resource == "" || group == "" {
		return &contracts.ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	count, err := l.RedisRepository.IncrementWithTTL(ctx, key, time.Duration(windowSec)*time.Second+time.Second)
	if err != nil {
		l.Log.Error("resourceLimiter.ApplyResourceLimiter error calling RedisRepository.IncrementWithTTL",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return &contracts.ApplyResourceLimiterOutput{Allowed: false}, err
	}

	if count > in.MaxQuota {
		nextWindowStart := (windowID + 1) * int64(windowSec)
		retryAfter := int(nextWindowStart-now.Unix()) + 1

		l.Log.Info("resourceLimiter.ApplyResourceLimiter quota exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Int("count", count),
			zap.Int("retry_after", retryAfter),
		)
		return &contracts.ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}

	return &contracts.ApplyResourceLimiterOutput{Allowed: true}, nil
}
