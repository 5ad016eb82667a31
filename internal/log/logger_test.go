package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestConfigureLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("test")
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) {
		t.Errorf("info message missing: %s", out)
	}
	if !strings.Contains(out, `"component":"test"`) {
		t.Errorf("component field missing: %s", out)
	}
}

func TestConfigureInvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "verbose-ish", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	if got := Base().GetLevel(); got != DefaultLevel {
		t.Errorf("level = %v, want %v", got, DefaultLevel)
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	ctx := WithContext(context.Background(), WithComponent("ctx"))
	l := FromContext(ctx)
	l.Debug().Msg("from ctx")
	if !strings.Contains(buf.String(), `"component":"ctx"`) {
		t.Errorf("context logger not used: %s", buf.String())
	}

	buf.Reset()
	l = FromContext(context.Background())
	l.Debug().Msg("fallback")
	if !strings.Contains(buf.String(), "fallback") {
		t.Errorf("base logger not used as fallback: %s", buf.String())
	}
}
