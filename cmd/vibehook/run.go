package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/magicvibe/vibehook/internal/dispatch"
	"github.com/magicvibe/vibehook/internal/event"
	"github.com/magicvibe/vibehook/internal/execlog"
	"github.com/magicvibe/vibehook/internal/hook"
	"github.com/magicvibe/vibehook/internal/log"
)

type runParams struct {
	Event   string
	Trigger string
	Context string // payload file path, or "-"
	Vars    []string
	DryRun  bool
}

// runDispatch is the full dispatch cycle behind `vibehook run`.
func runDispatch(ctx context.Context, p runParams) error {
	logger := log.FromContext(ctx)

	eng, err := setupEngine()
	if err != nil {
		return err
	}

	payload, err := loadPayload(p.Context)
	if err != nil {
		return err
	}
	ev, err := event.Build(event.Type(p.Event), p.Trigger, payload)
	if err != nil {
		return err
	}
	overrides, err := parseVars(p.Vars, readStdinIfPiped)
	if err != nil {
		return err
	}
	ev, err = ev.Merge(overrides)
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
	sel := hook.Select(hooks, ev)

	if len(sel.Run) == 0 && len(sel.Skipped) == 0 {
		logger.Verbosef("no hooks match %s/%s\n", ev.Type, ev.Trigger)
		return nil
	}

	// Dry runs must not touch the on-disk log.
	var logw execlog.Writer = &execlog.Memory{}
	if !p.DryRun {
		fw, err := execlog.Open(eng.Config.AbsLogPath(eng.VibeDir))
		if err != nil {
			return err
		}
		defer fw.Close()
		logw = fw
	}

	d := dispatch.New(
		&dispatch.ShellRunner{Shell: eng.Config.Shell},
		logw,
		dispatch.Options{
			WorkDir:         eng.Root,
			Timeout:         eng.Config.Timeout(),
			EscapeVariables: eng.Config.EscapeVariables,
			DryRun:          p.DryRun,
		},
	)

	batch, err := d.Dispatch(ctx, sel, ev)
	if err != nil {
		return err
	}

	if batch.Blocked {
		for _, id := range batch.Halted {
			logger.Warnf("hook %q not executed: batch halted", id)
		}
		if out := failedOutput(batch.Records, batch.BlockedBy); out != "" {
			logger.Printf("%s\n", out)
		}
		return fmt.Errorf("hook %q failed on %s/%s: %s blocked", batch.BlockedBy, ev.Type, ev.Trigger, guardedAction(ev.Type))
	}
	if batch.Failed > 0 {
		logger.Printf("Done: %d hook(s) failed (non-blocking).\n", batch.Failed)
	}
	return nil
}

// failedOutput returns the captured output of the hook that blocked the
// batch, so the caller sees why their action was refused.
func failedOutput(records []execlog.Record, hookID string) string {
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if r.HookID != hookID || r.Status != execlog.StatusFailed {
			continue
		}
		var parts []string
		if r.Stdout != "" {
			parts = append(parts, r.Stdout)
		}
		if r.Stderr != "" {
			parts = append(parts, r.Stderr)
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

// guardedAction names the action a before-class event protects, for the
// blocking error message.
func guardedAction(t event.Type) string {
	switch t {
	case event.GitCommit:
		return "commit"
	case event.GitPush:
		return "push"
	}
	return "action"
}
