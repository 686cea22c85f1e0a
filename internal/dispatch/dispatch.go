package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/magicvibe/vibehook/internal/event"
	"github.com/magicvibe/vibehook/internal/execlog"
	"github.com/magicvibe/vibehook/internal/hook"
	"github.com/magicvibe/vibehook/internal/log"
	"github.com/magicvibe/vibehook/internal/template"
)

// Options tune a dispatch cycle.
type Options struct {
	WorkDir         string        // working directory for hook commands
	Timeout         time.Duration // per-hook limit; 0 disables
	EscapeVariables bool          // shell-quote substituted values
	DryRun          bool          // resolve and print instead of executing
}

// Batch is the outcome of dispatching one event against a hook selection.
type Batch struct {
	Records   []execlog.Record
	Failed    int
	Blocked   bool   // a before-class hook failed; the guarded action must not proceed
	BlockedBy string // hook id that blocked the action
	Halted    []string
}

// Dispatcher runs selected hooks strictly sequentially and records every
// attempt.
type Dispatcher struct {
	runner Runner
	logw   execlog.Writer
	opts   Options
}

// New creates a dispatcher. The writer receives one record per execution
// attempt, including skipped hooks.
func New(runner Runner, w execlog.Writer, opts Options) *Dispatcher {
	return &Dispatcher{runner: runner, logw: w, opts: opts}
}

// Dispatch executes the selection against the event context.
//
// Hooks run one at a time in the selection's order; a hook's subprocess must
// exit before the next hook starts. For before-class events a failure blocks
// the guarded action and halts the remainder of the batch; for after-class
// events failures are recorded and execution continues.
func (d *Dispatcher) Dispatch(ctx context.Context, sel hook.Selection, ev event.Context) (Batch, error) {
	logger := log.FromContext(ctx)
	var batch Batch

	for _, skip := range sel.Skipped {
		detail := skip.Hook.Problem
		if skip.Reason == hook.SkipDisabled {
			detail = "disabled in front matter"
		}
		logger.Warnf("hook %q skipped (%s): %s", skip.Hook.ID, skip.Reason, detail)
		rec := d.record(skip.Hook.ID, ev, execlog.Status(skip.Reason))
		rec.Detail = detail
		if err := d.append(&batch, rec); err != nil {
			return batch, err
		}
	}

	for i, h := range sel.Run {
		res := template.Substitute(h.Command, ev, d.opts.EscapeVariables)
		for _, token := range res.Unresolved {
			logger.Warnf("hook %q: variable {{%s}} not set for %s event, substituted empty string", h.ID, token, ev.Type)
		}

		if d.opts.DryRun {
			logger.Printf("[dry-run] %s: %s\n", h.ID, res.Command)
			continue
		}

		logger.Printf("Running hook '%s'...\n", h.ID)
		logger.Verbosef("$ %s\n", res.Command)

		rec := d.record(h.ID, ev, execlog.StatusSucceeded)
		rec.Command = res.Command

		runCtx := ctx
		var cancel context.CancelFunc
		if d.opts.Timeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, d.opts.Timeout)
		}
		start := time.Now()
		out, runErr := d.runner.Run(runCtx, res.Command, d.opts.WorkDir)
		if cancel != nil {
			cancel()
		}

		rec.DurationMs = time.Since(start).Milliseconds()
		rec.ExitCode = out.ExitCode
		rec.Stdout = out.Stdout
		rec.Stderr = out.Stderr
		if runErr != nil {
			// Could not start at all (shell missing, bad workdir).
			rec.ExitCode = -1
			if rec.Stderr != "" {
				rec.Stderr += "\n"
			}
			rec.Stderr += runErr.Error()
		}
		if runErr != nil || rec.ExitCode != 0 {
			rec.Status = execlog.StatusFailed
			batch.Failed++
		}

		if err := d.append(&batch, rec); err != nil {
			return batch, err
		}

		if rec.Status == execlog.StatusFailed {
			if ev.BeforeClass() {
				batch.Blocked = true
				batch.BlockedBy = h.ID
				for _, rest := range sel.Run[i+1:] {
					batch.Halted = append(batch.Halted, rest.ID)
				}
				return batch, nil
			}
			logger.Warnf("hook %q failed (exit %d)", h.ID, rec.ExitCode)
		}
	}

	return batch, nil
}

func (d *Dispatcher) record(hookID string, ev event.Context, status execlog.Status) execlog.Record {
	return execlog.Record{
		Timestamp:    time.Now().UTC(),
		HookID:       hookID,
		EventType:    string(ev.Type),
		EventTrigger: ev.Trigger,
		Status:       status,
	}
}

func (d *Dispatcher) append(batch *Batch, rec execlog.Record) error {
	if err := d.logw.Append(rec); err != nil {
		return fmt.Errorf("record hook %q: %w", rec.HookID, err)
	}
	batch.Records = append(batch.Records, rec)
	return nil
}
