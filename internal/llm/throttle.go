package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// ErrThrottled is returned when a call cannot get a slot before ctx ends.
var ErrThrottled = errors.New("llm: request budget exhausted")

type throttled struct {
	Provider
	limiter *rate.Limiter
}

// Throttle caps p at perMinute calls, allowing a burst of the same size so a
// quiet minute can be spent at once. perMinute <= 0 returns p unchanged.
func Throttle(p Provider, perMinute int) Provider {
	if perMinute <= 0 {
		return p
	}
	return &throttled{
		Provider: p,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

func (t *throttled) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrThrottled, err)
	}
	return t.Provider.Complete(ctx, req)
}
