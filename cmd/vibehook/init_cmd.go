package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/magicvibe/vibehook/internal/config"
	"github.com/magicvibe/vibehook/internal/log"
	"github.com/magicvibe/vibehook/internal/vibe"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Scaffold a .magic-vibe directory",
		GroupID: GroupSetup,
		Long: `Init creates the .magic-vibe directory layout in the target directory
(--root, or the working directory): the system-wide and user-template
hook directories, the memory directory for the execution log, a
commented config.toml and a sample hook file.`,
		Example: `  vibehook init
  vibehook init --root ~/projects/app --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config.toml")

	return cmd
}

func runInit(ctx context.Context, force bool) error {
	logger := log.FromContext(ctx)

	target := rootFlag
	if target == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		target = wd
	}
	vibeDir := vibe.Path(target)

	for _, dir := range []string{vibe.SystemHookDir, vibe.UserHookDir, vibe.MemoryDir} {
		if err := os.MkdirAll(filepath.Join(vibeDir, dir), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	cfgPath, err := config.Init(vibeDir, force)
	if err != nil {
		return err
	}
	logger.Printf("Created %s\n", cfgPath)

	samplePath := filepath.Join(vibeDir, vibe.UserHookDir, "notify-completion.hook.md")
	if _, err := os.Stat(samplePath); err == nil {
		logger.Verbosef("sample hook already exists, leaving it alone\n")
	} else {
		if err := os.WriteFile(samplePath, []byte(sampleHook), 0o644); err != nil {
			return fmt.Errorf("write sample hook: %w", err)
		}
		logger.Printf("Created %s\n", samplePath)
	}

	logger.Printf("Initialized Magic Vibe hooks in %s\n", vibeDir)
	return nil
}

const sampleHook = `---
type: task_status_change
trigger: completed
priority: 100
enabled: false
---

# Notify on task completion

Prints a short notification whenever a task is marked completed.
Enable it by setting ` + "`enabled: true`" + ` in the front matter above.

` + "```bash" + `
echo "Task {{task.id}} completed: {{task.title}}"
` + "```" + `
`
