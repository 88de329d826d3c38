package contracts

import (
	"context"
	"time"
)

// ApplyResourceLimiterInput configures one limiter evaluation. ResourceName is
// the entity being limited (a user id or client IP) and LimiterGroupName
// namespaces the key. NowUTC is optional; when zero the current time is used.
type ApplyResourceLimiterInput struct {
	ResourceName      string
	LimiterGroupName  string
	WindowDurationSec int
	MaxQuota          int
	NowUTC            time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

type ResourceLimiter interface {
	ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error)
}
