package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/princekumarofficial/media-service/internal/utils/response"
)

// Limiter is satisfied by ratelimit.TokenBucket
type Limiter interface {
	Allow(ctx context.Context, clientID, action string) (bool, int64, error)
	GetRemaining(ctx context.Context, clientID, action string) (int64, error)
	Capacity() int64
	Window() time.Duration
}

// RateLimit maps action names to their limiters. A nil *RateLimit or an
// action without a limiter lets every request through.
type RateLimit struct {
	limiters map[string]Limiter
}

func NewRateLimit(limiters map[string]Limiter) *RateLimit {
	return &RateLimit{limiters: limiters}
}

// Wrap applies the limiter registered for action to handler
func (rl *RateLimit) Wrap(action string, handler http.HandlerFunc) http.Handler {
	if rl == nil {
		return handler
	}
	limiter, ok := rl.limiters[action]
	if !ok {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := ClientIP(r)

		allowed, remaining, err := limiter.Allow(r.Context(), clientID, action)
		if err != nil {
			slog.Error("Rate limit check failed",
				slog.String("action", action),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(
				fmt.Errorf("rate limit check failed: %w", err)))
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(limiter.Capacity(), 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(limiter.Window().Seconds())))

		if !allowed {
			response.WriteJSON(w, http.StatusTooManyRequests, response.GeneralError(
				errors.New("rate limit exceeded")))
			return
		}

		handler.ServeHTTP(w, r)
	})
}

// Remaining reports the tokens left for clientID under every bound action
func (rl *RateLimit) Remaining(ctx context.Context, clientID string) (map[string]ActionStatus, error) {
	status := make(map[string]ActionStatus)
	if rl == nil {
		return status, nil
	}

	for action, limiter := range rl.limiters {
		remaining, err := limiter.GetRemaining(ctx, clientID, action)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s bucket: %w", action, err)
		}
		status[action] = ActionStatus{
			Limit:     limiter.Capacity(),
			Remaining: remaining,
			Window:    int(limiter.Window().Seconds()),
		}
	}
	return status, nil
}

type ActionStatus struct {
	Limit     int64 `json:"limit"`
	Remaining int64 `json:"remaining"`
	Window    int   `json:"window_seconds"`
}

// ClientIP is the key requests are limited by
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
