package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	t.Run("quiet", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := New(buf, false)
		log.Debug().Msg("hidden")
		if buf.Len() != 0 {
			t.Errorf("expected no debug output, got %q", buf.String())
		}
		log.Warn().Msg("shown")
		if !strings.Contains(buf.String(), "shown") {
			t.Errorf("expected warning in output, got %q", buf.String())
		}
	})

	t.Run("verbose", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := New(buf, true)
		log.Debug().Str("tx", "1").Msg("applied")
		out := buf.String()
		if !strings.Contains(out, "applied") || !strings.Contains(out, "tx=1") {
			t.Errorf("expected debug message with field, got %q", out)
		}
	})
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	if !strings.Contains(buf.String(), `"message":"test message"`) {
		t.Errorf("Expected JSON output to contain the message, got: %s", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	log := FromContext(ctx)
	log.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("Expected log output from retrieved logger")
	}
}

func TestFromContext_DefaultLogger(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("Expected a disabled logger, got level %v", log.GetLevel())
	}
}
