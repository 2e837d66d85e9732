// Package llm writes Japanese copy with the Anthropic Messages API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	gobreaker "github.com/sony/gobreaker/v2"

	"newsdesk/internal/metrics"
)

// ErrUnavailable is returned while the circuit breaker is open.
var ErrUnavailable = errors.New("llm provider unavailable")

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int64
	Timeout   time.Duration

	// FailureThreshold is the number of consecutive failures that opens the
	// breaker. OpenTimeout is how long it stays open.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	cb        *gobreaker.CircuitBreaker[string]
	logger    *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = time.Minute
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	c := &Client{
		api:       anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		logger:    logger.With("component", "llm"),
	}

	c.cb = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "anthropic",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: countsAsSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})

	return c
}

// Model is recorded on generated posts.
func (c *Client) Model() string {
	return c.model
}

// countsAsSuccess keeps caller mistakes and cancellations from tripping the
// breaker. Only provider-side failures count.
func countsAsSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		code := apiErr.StatusCode
		return code < http.StatusInternalServerError && code != http.StatusTooManyRequests
	}
	return false
}

func (c *Client) complete(ctx context.Context, task, system, prompt string, maxTokens int64) (string, error) {
	if maxTokens <= 0 || maxTokens > c.maxTokens {
		maxTokens = c.maxTokens
	}

	start := time.Now()
	text, err := c.cb.Execute(func() (string, error) {
		callCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		msg, err := c.api.Messages.New(callCtx, anthropic.MessageNewParams{
			Model:     anthropic.Model(c.model),
			MaxTokens: maxTokens,
			System:    []anthropic.TextBlockParam{{Text: system}},
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		if err != nil {
			return "", err
		}

		var sb strings.Builder
		for _, block := range msg.Content {
			if block.Type == "text" {
				sb.WriteString(block.Text)
			}
		}
		out := strings.TrimSpace(sb.String())
		if out == "" {
			return "", fmt.Errorf("empty completion (stop reason %s)", msg.StopReason)
		}
		return out, nil
	})

	metrics.LLMDuration.WithLabelValues(task).Observe(time.Since(start).Seconds())
	metrics.LLMRequests.WithLabelValues(task, metrics.Result(err)).Inc()

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%s: %w", task, ErrUnavailable)
	}
	if err != nil {
		c.logger.Error("llm request failed", "task", task, "error", err)
		return "", fmt.Errorf("%s: %w", task, err)
	}

	c.logger.Debug("llm request completed", "task", task, "duration", time.Since(start))
	return text, nil
}
