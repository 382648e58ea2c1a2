package logger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"notesync/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	levels := []string{"debug", "info", "warn", "warning", "error", "invalid", ""}

	for _, env := range []logger.Environment{logger.Development, logger.Production} {
		for _, level := range levels {
			t.Run(string(env)+"/level="+level, func(t *testing.T) {
				log, err := logger.NewLogger(env, level)
				require.NoError(t, err)
				require.NotNil(t, log)
			})
		}
	}
}

func TestFromContext(t *testing.T) {
	t.Run("returns logger stored in context", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		type childKey struct{}
		ctx := context.WithValue(logger.NewContext(context.Background(), testLogger), childKey{}, "v")

		retrieved, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, testLogger, retrieved)
	})

	t.Run("error when no logger in context", func(t *testing.T) {
		retrieved, err := logger.FromContext(context.Background())
		require.Error(t, err)
		assert.Nil(t, retrieved)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

func TestLog(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	t.Run("context logger has priority over global", func(t *testing.T) {
		contextLogger := logger.NewNop()
		globalLogger := logger.NewNop()
		logger.SetGlobalLogger(globalLogger)

		ctx := logger.NewContext(context.Background(), contextLogger)
		assert.Same(t, contextLogger, logger.Log(ctx))
	})

	t.Run("global logger when context has none", func(t *testing.T) {
		globalLogger := logger.NewNop()
		logger.SetGlobalLogger(globalLogger)

		assert.Same(t, globalLogger, logger.Log(context.Background()))
	})

	t.Run("fallback logger is a singleton", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		first := logger.Log(context.Background())
		second := logger.Log(context.Background())
		require.NotNil(t, first)
		assert.Same(t, first, second)
	})
}

func TestInitGlobalLoggerWithLevel(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	require.NoError(t, logger.InitGlobalLoggerWithLevel(logger.Production, "info"))
	first := logger.Log(context.Background())

	require.NoError(t, logger.InitGlobalLogger(logger.Development))
	second := logger.Log(context.Background())

	assert.Same(t, first, second, "existing global logger must be kept")
}

func TestRequestID(t *testing.T) {
	t.Run("generated ids are valid uuids", func(t *testing.T) {
		_, first := logger.WithRequestID(context.Background(), "")
		_, second := logger.WithRequestID(context.Background(), "")
		_, err := uuid.Parse(first)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("ensure keeps existing id", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-7")

		same, id := logger.EnsureRequestID(ctx)
		assert.Equal(t, "req-7", id)
		assert.Equal(t, ctx, same)
	})

	t.Run("ensure adds id when missing", func(t *testing.T) {
		ctx, id := logger.EnsureRequestID(context.Background())

		got, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("empty id is replaced with generated one", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("explicit id is kept", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-42")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-42", id)
	})

	t.Run("missing id", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}

func TestLoggerMethods(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	t.Run("With returns new instance", func(t *testing.T) {
		assert.NotSame(t, log, log.With(zap.String("key", "value")))
	})

	t.Run("logging does not panic", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-2")
		assert.NotPanics(t, func() {
			log.Debug(ctx, "debug", zap.Int("count", 1))
			log.Info(ctx, "info")
			log.Warn(context.Background(), "warn")
			log.Error(ctx, "error")
			_ = log.Sync()
		})
	})
}
