package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)

	empty := logger.Error(nil)
	assert.Empty(t, empty.Key, "nil error must produce an empty attr")
}

func TestStringAttrs_EmptyInput(t *testing.T) {
	t.Parallel()

	for name, attr := range map[string]slog.Attr{
		"RequestID": logger.RequestID(""),
		"ClientIP":  logger.ClientIP(""),
		"UserAgent": logger.UserAgent(""),
		"Subject":   logger.Subject(""),
		"LookupID":  logger.LookupID(""),
	} {
		assert.Empty(t, attr.Key, "%s with empty input must produce an empty attr", name)
	}
}

func TestStringAttrs_Keys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "request_id", logger.RequestID("r1").Key)
	assert.Equal(t, "client_ip", logger.ClientIP("10.0.0.1").Key)
	assert.Equal(t, "subject_id", logger.Subject("s1").Key)
	assert.Equal(t, "lookup_id", logger.LookupID("abc").Key)
	assert.Equal(t, "component", logger.Component("session").Key)
	assert.Equal(t, "event", logger.Event("renewed").Key)
	assert.Equal(t, "duration", logger.Duration(time.Second).Key)
}

func TestNew_ServiceAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithProduction("authkit"),
		logger.WithOutput(&buf),
	)

	log.Info("hello")

	out := buf.String()
	assert.Contains(t, out, `"service":"authkit"`)
	assert.Contains(t, out, `"msg":"hello"`)
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithLevel(slog.LevelWarn),
		logger.WithOutput(&buf),
	)

	log.Info("dropped")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		logger.Discard().Error("nothing to see", logger.Error(errors.New("x")))
	})
}
