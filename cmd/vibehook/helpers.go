package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/magicvibe/vibehook/internal/config"
	"github.com/magicvibe/vibehook/internal/event"
	"github.com/magicvibe/vibehook/internal/vibe"
)

// engine is the resolved environment every command operates on.
type engine struct {
	Root    string // vibe root (the directory containing .magic-vibe)
	VibeDir string // <root>/.magic-vibe
	Config  config.Config
}

// setupEngine discovers the vibe root (from --root or the working directory)
// and loads its configuration.
func setupEngine() (engine, error) {
	start := rootFlag
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return engine{}, fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}

	root, err := vibe.FindRoot(start)
	if err != nil {
		return engine{}, err
	}
	vibeDir := vibe.Path(root)

	cfg, err := config.Load(vibeDir)
	if err != nil {
		return engine{}, err
	}

	return engine{Root: root, VibeDir: vibeDir, Config: cfg}, nil
}

// readStdinIfPiped reads all content from stdin if it's piped (not a TTY).
// Returns empty string and nil if stdin is a TTY (interactive).
func readStdinIfPiped() (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// parseVars parses "ns.field=value" entries into a map. A value of "-" reads
// piped stdin content and assigns it to all such keys.
func parseVars(entries []string, stdin func() (string, error)) (map[string]string, error) {
	result := make(map[string]string)
	var stdinKeys []string

	for _, e := range entries {
		idx := strings.Index(e, "=")
		if idx == -1 {
			return nil, fmt.Errorf("invalid variable %q: expected ns.field=VALUE", e)
		}
		key := e[:idx]
		value := e[idx+1:]
		if !strings.Contains(key, ".") || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
			return nil, fmt.Errorf("invalid variable name %q: expected namespace.field", key)
		}
		if value == "-" {
			stdinKeys = append(stdinKeys, key)
		} else {
			result[key] = value
		}
	}

	if len(stdinKeys) > 0 {
		content, err := stdin()
		if err != nil {
			return nil, err
		}
		if content == "" {
			return nil, fmt.Errorf("stdin not piped: ns.field=- requires piped input")
		}
		content = strings.TrimRight(content, "\n")
		for _, key := range stdinKeys {
			result[key] = content
		}
	}

	return result, nil
}

// loadPayload reads an event payload from a JSON file, or from stdin when
// path is "-". An empty path is an empty payload.
//
// Payload format: {"task": {...}} / {"plan": {...}} / {"git": {...}},
// one namespace matching the event type.
func loadPayload(path string) (event.Payload, error) {
	var data []byte
	switch path {
	case "":
		return event.Payload{}, nil
	case "-":
		content, err := readStdinIfPiped()
		if err != nil {
			return event.Payload{}, err
		}
		if content == "" {
			return event.Payload{}, fmt.Errorf("stdin not piped: --context - requires piped input")
		}
		data = []byte(content)
	default:
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return event.Payload{}, fmt.Errorf("read context file: %w", err)
		}
	}

	var p event.Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return event.Payload{}, fmt.Errorf("parse context payload: %w", err)
	}
	return p, nil
}
