package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that logs every LLM request.
type LoggingProvider struct {
	inner  Provider
	logger *zap.Logger
}

// WithLogging wraps a Provider with structured request logging.
// A nil logger disables logging without changing behavior.
func WithLogging(p Provider, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("model", l.inner.ModelID()),
		zap.String("purpose", purpose),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
		zap.Int("prompt_chars", requestChars(req)),
	}

	if resp != nil {
		fields = append(fields,
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
			zap.String("stop_reason", resp.StopReason),
		)
		if cost := LookupCost(resp.Model); cost != nil {
			fields = append(fields,
				zap.Float64("cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		l.logger.Warn("llm request failed", fields...)
		return resp, err
	}

	l.logger.Info("llm request", fields...)
	l.logger.Debug("llm exchange",
		zap.String("request", serializeRequest(req)),
		zap.String("response", resp.Content))

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// requestChars counts the characters sent across system and user messages.
func requestChars(req Request) int {
	n := len(req.System)
	for _, m := range req.Messages {
		n += len(m.Content)
	}
	return n
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
