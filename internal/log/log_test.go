package log

import (
	"context"
	"strings"
	"testing"
)

func TestLoggerModes(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		write   func(*Logger)
		want    string
	}{
		{
			name:  "printf writes by default",
			write: func(l *Logger) { l.Printf("hello %s\n", "world") },
			want:  "hello world\n",
		},
		{
			name:  "warnf adds prefix",
			write: func(l *Logger) { l.Warnf("hook %s failed", "a") },
			want:  "Warning: hook a failed\n",
		},
		{
			name:  "quiet suppresses printf",
			quiet: true,
			write: func(l *Logger) { l.Printf("hello\n") },
			want:  "",
		},
		{
			name:  "quiet suppresses warnf",
			quiet: true,
			write: func(l *Logger) { l.Warnf("nope") },
			want:  "",
		},
		{
			name:  "verbosef silent without verbose",
			write: func(l *Logger) { l.Verbosef("$ sh -c ...\n") },
			want:  "",
		},
		{
			name:    "verbosef writes with verbose",
			verbose: true,
			write:   func(l *Logger) { l.Verbosef("$ sh -c ...\n") },
			want:    "$ sh -c ...\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			l := New(&buf, tt.verbose, tt.quiet)
			tt.write(l)
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestFromContext_NoLogger(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("expected no-op logger, got nil")
	}
	// Must not panic
	l.Printf("discarded")
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, false, false)
	ctx := WithLogger(context.Background(), l)

	got := FromContext(ctx)
	got.Printf("x")
	if buf.String() != "x" {
		t.Errorf("expected logger from context to write to buffer, got %q", buf.String())
	}
}
