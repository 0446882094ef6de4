// Package translator sends text to a remote LLM service for translation.
// It supports OpenAI chat completions and Google Gemini behind a common
// Provider interface, and wraps remote calls in bounded retries plus a
// circuit breaker so a dead service fails fast instead of stalling a
// whole batch.
package translator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// ErrEmptyResponse is returned when the remote service answers without
// any usable translation text
var ErrEmptyResponse = errors.New("no translation returned")

// Request describes one translation to perform. The target language is
// taken verbatim, so regional variants like "French (Canada)" and
// "French (France)" are distinct targets.
type Request struct {
	Text           string
	TargetLanguage string
}

// Provider is the interface all translation backends implement
type Provider interface {
	// Translate translates the request text into the target language
	Translate(ctx context.Context, req Request) (string, error)

	// Name returns the provider name
	Name() string
}

// Config holds translation provider settings
type Config struct {
	// Provider selects the backend ("openai" or "gemini")
	Provider string

	// APIKey authenticates against the remote service
	APIKey string

	// Model is the model identifier; empty selects the provider default
	Model string

	// Temperature for the completion request
	Temperature float32

	// MaxRetries bounds retries for transient remote failures
	MaxRetries int

	// Timeout is the per-request timeout
	Timeout time.Duration
}

// NewProvider creates a translation provider based on the configuration.
// The returned provider retries transient failures and trips a circuit
// breaker after repeated consecutive errors.
func NewProvider(config *Config) (Provider, error) {
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}

	var inner Provider
	var err error

	switch config.Provider {
	case "openai", "":
		inner, err = NewOpenAIProvider(config)
	case "gemini":
		inner, err = NewGeminiProvider(config)
	default:
		err = fmt.Errorf("unknown translation provider: %s (supported: openai, gemini)", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	return &resilientProvider{
		inner:      inner,
		maxRetries: config.MaxRetries,
		timeout:    config.Timeout,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    inner.Name(),
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}, nil
}

// resilientProvider decorates a Provider with per-request timeouts,
// bounded retries and a circuit breaker
type resilientProvider struct {
	inner      Provider
	breaker    *gobreaker.CircuitBreaker
	maxRetries int
	timeout    time.Duration
}

func (p *resilientProvider) Name() string {
	return p.inner.Name()
}

func (p *resilientProvider) Translate(ctx context.Context, req Request) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 1s, 2s, 4s, ...
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		result, err := p.breaker.Execute(func() (interface{}, error) {
			callCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()
			return p.inner.Translate(callCtx, req)
		})
		if err == nil {
			return result.(string), nil
		}

		lastErr = err
		if ctx.Err() != nil || !isRetryable(err) {
			break
		}
	}

	return "", lastErr
}

// isRetryable reports whether a remote failure is worth retrying:
// timeouts, rate limits and server-side errors are; everything else
// (bad request, auth failure, open breaker) is not.
func isRetryable(err error) bool {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}

	// Unclassified errors (connection resets etc.) get one more chance
	return true
}
