// Package vibe locates the Magic Vibe tree the engine operates on.
//
// A "vibe root" is the nearest ancestor directory containing a .magic-vibe
// directory, discovered by walking upward from a starting path the same way
// git discovers its repository root.
package vibe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Dir is the marker directory that identifies a vibe root.
const Dir = ".magic-vibe"

// Hook and log locations inside the .magic-vibe directory.
const (
	SystemHookDir = "rules/hooks"
	UserHookDir   = "ai/hooks"
	MemoryDir     = "ai/memory"
	LogFileName   = "hook-log.jsonl"
	ConfigName    = "config.toml"
)

// ErrNotFound is returned when no .magic-vibe directory exists in start or
// any of its ancestors.
var ErrNotFound = errors.New("no " + Dir + " directory found")

// FindRoot walks upward from start and returns the first directory that
// contains a .magic-vibe directory.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}
	for {
		info, err := os.Stat(filepath.Join(dir, Dir))
		if err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched %s and ancestors)", ErrNotFound, start)
		}
		dir = parent
	}
}

// Path returns the .magic-vibe directory under root.
func Path(root string) string {
	return filepath.Join(root, Dir)
}
