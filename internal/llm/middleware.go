package llm

import (
	"context"
	"errors"
	"time"

	"smart_learning_path/pkg/monitoring"
	"smart_learning_path/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout bounds every Complete call. A non-positive timeout returns p unchanged.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: timeout}
}

func (t *timeoutProvider) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	text, err := t.inner.Complete(ctx, prompt, maxTokens)
	if err != nil {
		var pe *ProviderError
		if !errors.As(err, &pe) {
			err = &ProviderError{Provider: t.inner.Name(), Err: err}
		}
		return "", err
	}
	return text, nil
}

func (t *timeoutProvider) Name() string { return t.inner.Name() }

type instrumentedProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithInstrumentation records a span, a latency observation and a log line
// for every call.
func WithInstrumentation(p Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &instrumentedProvider{inner: p, log: log.With(zap.String("provider", p.Name()))}
}

func (i *instrumentedProvider) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, span := tracing.Tracer.Start(ctx, "llm.complete")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.provider", i.inner.Name()),
		attribute.Int("llm.max_tokens", maxTokens),
		attribute.Int("llm.prompt_chars", len(prompt)),
	)

	start := time.Now()
	text, err := i.inner.Complete(ctx, prompt, maxTokens)
	elapsed := time.Since(start)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		i.log.Warn("completion failed",
			zap.Duration("latency", elapsed),
			zap.Int("max_tokens", maxTokens),
			zap.Error(err),
		)
	} else {
		i.log.Debug("completion finished",
			zap.Duration("latency", elapsed),
			zap.Int("max_tokens", maxTokens),
			zap.Int("response_chars", len(text)),
		)
	}
	monitoring.LLMRequestDuration.WithLabelValues(i.inner.Name(), outcome).Observe(elapsed.Seconds())

	return text, err
}

func (i *instrumentedProvider) Name() string { return i.inner.Name() }
