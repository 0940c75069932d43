package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a key-value pair carried in the context and attached to every
// log entry written with that context.
type Field struct {
	Key   string
	Value interface{}
}

// MetricField is a key-value pair logged once by Metrics.
type MetricField struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

// Twilio stamps each webhook attempt with this header. Retries of the same
// callback reuse the token, so it correlates them without an X-Request-ID.
const twilioIdempotencyHeader = "I-Twilio-Idempotency-Token"

// WithFields returns a child context with fields appended. The parent's
// fields are copied so sibling contexts never share a backing array.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

func getObservabilityFields(ctx context.Context) []Field {
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

// mergeFields combines context fields with metric fields. A metric field
// replaces a context field of the same key in place.
func mergeFields(ctx context.Context, fields []MetricField) []zapcore.Field {
	index := make(map[string]int)
	merged := make([]zapcore.Field, 0, len(fields))

	put := func(key string, value interface{}) {
		field := zap.Any(key, value)
		if i, seen := index[key]; seen {
			merged[i] = field
			return
		}
		index[key] = len(merged)
		merged = append(merged, field)
	}

	for _, f := range getObservabilityFields(ctx) {
		put(f.Key, f.Value)
	}
	for _, f := range fields {
		put(f.Key, f.Value)
	}
	return merged
}

// Middleware tags each request with an id and request fields, logs its
// status and latency, and turns a handler panic into a 500.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := requestIDFor(c)
		c.Request.Header.Set("X-Request-ID", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx := WithFields(c.Request.Context(),
			Field{"request_id", requestID},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
			Field{"client_ip", c.ClientIP()},
			Field{"user_agent", c.Request.UserAgent()},
		)
		if c.Request.ContentLength > 0 {
			ctx = WithFields(ctx, Field{"content_length", c.Request.ContentLength})
		}
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(500)
			}

			if c.Request.URL.Path == "/health" {
				return
			}
			l.Metrics(c.Request.Context(),
				MetricField{"status", c.Writer.Status()},
				MetricField{"latency_ns", time.Since(start).Nanoseconds()},
			)
		}()
		c.Next()
	}
}

func requestIDFor(c *gin.Context) string {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	if token := c.GetHeader(twilioIdempotencyHeader); token != "" {
		return "twilio-" + token
	}
	return "req-" + uuid.New().String()
}

// Logger wraps zap and enriches entries with the context's fields.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger creates a production JSON logger at info level.
func NewLogger() *Logger {
	zapLogger, _ := zap.NewProduction()
	return NewLoggerFromZap(zapLogger)
}

// NewLoggerAtLevel creates a production JSON logger at the named level
// ("debug", "info", "warn", "error").
func NewLoggerAtLevel(level string) (*Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return NewLoggerFromZap(zapLogger), nil
}

// NewLoggerFromZap wraps an existing zap logger, mostly for tests that
// need to observe log output.
func NewLoggerFromZap(zapLogger *zap.Logger) *Logger {
	zapLogger = zapLogger.WithOptions(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	return &Logger{zapLogger: zapLogger}
}

func (l *Logger) with(ctx context.Context) *zap.Logger {
	fields := getObservabilityFields(ctx)
	if len(fields) == 0 {
		return l.zapLogger
	}
	zapFields := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}
	return l.zapLogger.With(zapFields...)
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.with(ctx).Info(msg)
}

func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.with(ctx).Info(msg, zap.Error(err))
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.with(ctx).Error(msg, zap.Error(err))
}

func (l *Logger) Warn(ctx context.Context, msg string) {
	l.with(ctx).Warn(msg)
}

func (l *Logger) WarnWithError(ctx context.Context, msg string, err error) {
	l.with(ctx).Warn(msg, zap.Error(err))
}

func (l *Logger) Debug(ctx context.Context, msg string) {
	l.with(ctx).Debug(msg)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.with(ctx).Fatal(msg, zap.Error(err))
}

// Metrics logs one "Metrics" entry with the context fields and the given
// measurements.
func (l *Logger) Metrics(ctx context.Context, fields ...MetricField) {
	l.zapLogger.Info("Metrics", mergeFields(ctx, fields)...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}
