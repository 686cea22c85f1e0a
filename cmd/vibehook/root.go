package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/magicvibe/vibehook/internal/log"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	rootFlag string
)

// Command group IDs for organizing help output
const (
	GroupHooks = "hooks"
	GroupSetup = "setup"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vibehook",
	Short: "Hook discovery and dispatch engine for Magic Vibe trees",
	Long: `vibehook enforces the Magic Vibe hook protocol programmatically.

It discovers *.hook.md files under a .magic-vibe directory, matches them
against lifecycle events (task status changes, plan updates, git commits
and pushes), substitutes {{namespace.field}} variables into their command
blocks, and executes them sequentially in a deterministic order.

Hooks on "before" triggers gate their action: a failure blocks it. Hooks
on every other trigger are fire-and-forget; failures are logged and the
batch continues. Every execution attempt is appended to the execution log.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}
		// Flags are parsed by now; attach the logger they configure.
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show resolved hook commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all diagnostic output")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Path inside the Magic Vibe tree (default: working directory)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupHooks, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	// Hook commands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newCheckCmd())

	// Setup commands
	rootCmd.AddCommand(newInitCmd())
}
