// Package config handles loading and validation of the engine configuration.
//
// Configuration is read from <root>/.magic-vibe/config.toml. A missing file
// means defaults; an invalid file is an error. Relative paths are resolved
// against the .magic-vibe directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/magicvibe/vibehook/internal/vibe"
)

// Config holds the engine settings.
type Config struct {
	SystemHookDir   string `toml:"system_hook_dir"`  // default: rules/hooks
	UserHookDir     string `toml:"user_hook_dir"`    // default: ai/hooks
	LogPath         string `toml:"log_path"`         // default: ai/memory/hook-log.jsonl
	Shell           string `toml:"shell"`            // default: sh
	TimeoutSeconds  int    `toml:"timeout_seconds"`  // 0 disables the per-hook timeout
	EscapeVariables bool   `toml:"escape_variables"` // shell-quote substituted values
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		SystemHookDir: vibe.SystemHookDir,
		UserHookDir:   vibe.UserHookDir,
		LogPath:       filepath.Join(vibe.MemoryDir, vibe.LogFileName),
		Shell:         "sh",
	}
}

// Load reads config.toml from the given .magic-vibe directory.
// Returns Default() if the file doesn't exist; errors only on a file that
// exists but cannot be parsed or validated.
func Load(vibeDir string) (Config, error) {
	path := filepath.Join(vibeDir, vibe.ConfigName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.TimeoutSeconds < 0 {
		return Default(), fmt.Errorf("invalid timeout_seconds %d in %s: must be >= 0", cfg.TimeoutSeconds, path)
	}
	if cfg.Shell == "" {
		cfg.Shell = "sh"
	}
	if cfg.SystemHookDir == "" {
		cfg.SystemHookDir = vibe.SystemHookDir
	}
	if cfg.UserHookDir == "" {
		cfg.UserHookDir = vibe.UserHookDir
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(vibe.MemoryDir, vibe.LogFileName)
	}

	return cfg, nil
}

// Timeout returns the per-hook timeout as a duration (0 when disabled).
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// resolve turns a configured path into an absolute one, relative paths
// anchored at the .magic-vibe directory.
func resolve(vibeDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(vibeDir, path)
}

// AbsSystemHookDir returns the absolute system hook directory.
func (c Config) AbsSystemHookDir(vibeDir string) string { return resolve(vibeDir, c.SystemHookDir) }

// AbsUserHookDir returns the absolute user hook directory.
func (c Config) AbsUserHookDir(vibeDir string) string { return resolve(vibeDir, c.UserHookDir) }

// AbsLogPath returns the absolute execution log path.
func (c Config) AbsLogPath(vibeDir string) string { return resolve(vibeDir, c.LogPath) }

const defaultConfig = `# vibehook configuration

# Hook directories, relative to this .magic-vibe directory.
# System-wide hooks run before user-template hooks at equal priority.
# system_hook_dir = "rules/hooks"
# user_hook_dir = "ai/hooks"

# Execution log (append-only JSONL, one record per hook execution attempt).
# log_path = "ai/memory/hook-log.jsonl"

# Shell used to execute hook commands ("sh -c <command>").
# shell = "sh"

# Per-hook timeout in seconds. 0 disables the timeout.
# A timed-out hook counts as failed and follows the usual before/after rules.
# timeout_seconds = 0

# Shell-quote every substituted {{variable}} value.
# Off by default: raw substitution matches the documented hook behavior, but
# means task titles etc. are NOT escaped inside commands. Turn this on if
# your hook templates don't rely on injecting shell syntax via variables.
# escape_variables = false
`

// Init writes the default config template into the .magic-vibe directory.
// If force is true an existing file is overwritten.
// Returns the path to the created file.
func Init(vibeDir string, force bool) (string, error) {
	path := filepath.Join(vibeDir, vibe.ConfigName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(vibeDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
