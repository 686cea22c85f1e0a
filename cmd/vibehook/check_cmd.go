package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magicvibe/vibehook/internal/hook"
	"github.com/magicvibe/vibehook/internal/log"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Validate all hook files",
		GroupID: GroupHooks,
		Long: `Check parses every discovered hook file and reports validation
problems: missing or unknown event types, missing or invalid triggers,
and command blocks that are absent or ambiguous.

Exits non-zero if any hook is invalid.`,
		Example: `  vibehook check`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context())
		},
	}

	return cmd
}

func runCheck(ctx context.Context) error {
	logger := log.FromContext(ctx)

	eng, err := setupEngine()
	if err != nil {
		return err
	}

	hooks, err := hook.Load(
		eng.Config.AbsSystemHookDir(eng.VibeDir),
		eng.Config.AbsUserHookDir(eng.VibeDir),
	)
	if err != nil {
		return err
	}

	if len(hooks) == 0 {
		logger.Println("No hooks found.")
		return nil
	}

	var invalid, disabled int
	for _, h := range hooks {
		if !h.Valid() {
			invalid++
			fmt.Printf("%s: %s\n", h.File, h.Problem)
			continue
		}
		if !h.Enabled {
			disabled++
			logger.Verbosef("%s: ok (disabled)\n", h.File)
			continue
		}
		logger.Verbosef("%s: ok\n", h.File)
	}

	logger.Printf("%d hook(s): %d valid, %d invalid, %d disabled.\n",
		len(hooks), len(hooks)-invalid, invalid, disabled)
	if invalid > 0 {
		return fmt.Errorf("%d of %d hook(s) invalid", invalid, len(hooks))
	}
	return nil
}
