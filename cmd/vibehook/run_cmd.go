package main

import (
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		eventFlag   string
		triggerFlag string
		contextFlag string
		varFlags    []string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:     "run --event TYPE --trigger TRIGGER",
		Short:   "Dispatch an event against the discovered hooks",
		GroupID: GroupHooks,
		Long: `Run dispatches one lifecycle event: it discovers hooks, matches them
against the event, substitutes variables into their command blocks and
executes the matching hooks sequentially in priority order.

Event context is supplied as JSON via --context (a file, or - for stdin)
and/or individual --var namespace.field=value overrides.

For "before" triggers on git_commit and git_push a failing hook blocks
the guarded action: run exits non-zero and the remaining hooks of the
batch are not executed. On all other triggers failures are logged and
the batch continues.`,
		Example: `  # Task completed
  vibehook run --event task_status_change --trigger completed \
      --var task.id=42 --var task.title="Add login form"

  # Gate a commit; exit status decides whether the commit proceeds
  vibehook run --event git_commit --trigger before --context event.json

  # Preview the resolved commands without executing anything
  vibehook run --event git_push --trigger after --dry-run --var git.branch=main`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd.Context(), runParams{
				Event:   eventFlag,
				Trigger: triggerFlag,
				Context: contextFlag,
				Vars:    varFlags,
				DryRun:  dryRun,
			})
		},
	}

	cmd.Flags().StringVarP(&eventFlag, "event", "e", "", "Event type (e.g. task_status_change, git_commit)")
	cmd.Flags().StringVarP(&triggerFlag, "trigger", "t", "", "Event trigger (e.g. completed, before, after)")
	cmd.Flags().StringVarP(&contextFlag, "context", "c", "", "JSON payload file, or - for stdin")
	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "Variable override namespace.field=VALUE (repeatable, - reads stdin)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print resolved commands without executing them")
	_ = cmd.MarkFlagRequired("event")
	_ = cmd.MarkFlagRequired("trigger")

	return cmd
}
