package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/magicvibe/vibehook/internal/execlog"
	"github.com/magicvibe/vibehook/internal/log"
)

func newLogCmd() *cobra.Command {
	var (
		limitFlag int
		jsonFlag  bool
	)

	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Show the hook execution log",
		GroupID: GroupHooks,
		Long: `Log prints the recorded hook execution attempts, oldest first.
Records come from the append-only JSONL log; corrupt lines are skipped.`,
		Example: `  vibehook log
  vibehook log --limit 20
  vibehook log --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd.Context(), limitFlag, jsonFlag)
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "l", 0, "Only show the last N records (0 = all)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")

	return cmd
}

func runLog(ctx context.Context, limit int, asJSON bool) error {
	logger := log.FromContext(ctx)

	eng, err := setupEngine()
	if err != nil {
		return err
	}

	records, err := execlog.Read(eng.Config.AbsLogPath(eng.VibeDir))
	if err != nil {
		return err
	}
	records = execlog.Tail(records, limit)

	if asJSON {
		if records == nil {
			records = []execlog.Record{}
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		logger.Println("No executions recorded yet.")
		return nil
	}

	headers := []string{"TIMESTAMP", "HOOK", "EVENT", "TRIGGER", "STATUS", "EXIT", "DURATION"}
	var rows [][]string
	for _, r := range records {
		rows = append(rows, []string{
			r.Timestamp.UTC().Format(time.RFC3339),
			r.HookID,
			r.EventType,
			r.EventTrigger,
			colorize(string(r.Status)),
			strconv.Itoa(r.ExitCode),
			fmt.Sprintf("%dms", r.DurationMs),
		})
	}
	fmt.Print(renderTable(headers, rows))

	return nil
}
