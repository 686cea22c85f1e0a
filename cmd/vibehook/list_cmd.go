package main

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		eventFlag  string
		filterFlag string
		jsonFlag   bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered hooks",
		Aliases: []string{"ls"},
		GroupID: GroupHooks,
		Long: `List shows every hook discovered in the system-wide and user-template
hook directories, including disabled and invalid ones, in their dispatch
order.`,
		Example: `  vibehook list
  vibehook list --event git_commit
  vibehook list --filter lint --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), eventFlag, filterFlag, jsonFlag)
		},
	}

	cmd.Flags().StringVarP(&eventFlag, "event", "e", "", "Only show hooks for this event type")
	cmd.Flags().StringVarP(&filterFlag, "filter", "f", "", "Fuzzy filter on hook id")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")

	return cmd
}
