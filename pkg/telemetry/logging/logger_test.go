package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"brandguard-hq/brandguard/pkg/config"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Setup(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	logger.Info("evaluation complete", "kind", "safety")
	logger.Debug("suppressed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1 (debug suppressed)", len(lines))
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "evaluation complete" || entry["kind"] != "safety" {
		t.Errorf("log entry = %v", entry)
	}
}

func TestSetupTextFormats(t *testing.T) {
	for _, format := range []string{"text", "console"} {
		var buf bytes.Buffer
		logger, err := Setup(config.LoggingConfig{Level: "debug", Format: format}, &buf)
		if err != nil {
			t.Fatalf("Setup(%s) error = %v", format, err)
		}
		logger.Debug("visible")
		if !strings.Contains(buf.String(), "msg=visible") {
			t.Errorf("format %s output = %q", format, buf.String())
		}
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	if _, err := Setup(config.LoggingConfig{Level: "loud"}, nil); err == nil {
		t.Error("Setup() accepted an unknown level")
	}
	if _, err := Setup(config.LoggingConfig{Format: "xml"}, nil); err == nil {
		t.Error("Setup() accepted an unknown format")
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short text unchanged", "hello world", "hello world"},
		{"whitespace collapsed", "  hello\n\tworld  ", "hello world"},
		{"long text truncated", strings.Repeat("a", 200), strings.Repeat("a", 120) + "..."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snippet(tt.in); got != tt.want {
				t.Errorf("Snippet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLevelAliases(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"DEBUG", false},
		{"warning", false},
		{"error", false},
		{"verbose", true},
	}

	for _, tt := range tests {
		_, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
		}
	}
}
