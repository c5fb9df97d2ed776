package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetkit/fleetkit/pkg/logger"
)

type ctxKey struct{}

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json format by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Info("vehicle registered", slog.String("plate", "KA-1234"))

		record := decodeRecord(t, &buf)
		assert.Equal(t, "vehicle registered", record["msg"])
		assert.Equal(t, "KA-1234", record["plate"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))
		log.Info("vehicle registered")

		assert.Contains(t, buf.String(), "msg=\"vehicle registered\"")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.NotZero(t, buf.Len())
	})

	t.Run("static attributes on every record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "fleet-api")),
		)
		log.Info("ready")

		record := decodeRecord(t, &buf)
		assert.Equal(t, "fleet-api", record["service"])
	})

	t.Run("production defaults", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithProduction("fleet-api"))

		log.Debug("dropped at info level")
		require.Zero(t, buf.Len())

		log.Info("ready")
		record := decodeRecord(t, &buf)
		assert.Equal(t, "fleet-api", record["service"])
		assert.Equal(t, "production", record["env"])
	})

	t.Run("context extractor injects attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxKey{}).(string); ok {
					return slog.String("request_id", v), true
				}
				return slog.Attr{}, false
			}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-42")
		log.InfoContext(ctx, "handled")

		record := decodeRecord(t, &buf)
		assert.Equal(t, "req-42", record["request_id"])

		buf.Reset()
		log.InfoContext(context.Background(), "handled")
		record = decodeRecord(t, &buf)
		assert.NotContains(t, record, "request_id")
	})

	t.Run("extractors survive WithGroup and With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxKey{}).(string); ok {
					return slog.String("request_id", v), true
				}
				return slog.Attr{}, false
			}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-42")
		log.With(slog.String("component", "dispatch")).InfoContext(ctx, "handled")

		record := decodeRecord(t, &buf)
		assert.Equal(t, "req-42", record["request_id"])
		assert.Equal(t, "dispatch", record["component"])
	})
}
