package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/termai-cli/termai/internal/app"
	"github.com/termai-cli/termai/internal/infrastructure/patterns"
)

// NewPatternsCommand creates the patterns command with all subcommands.
func NewPatternsCommand(container *app.Container) *cobra.Command {
	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Inspect or initialize safety pattern files",
	}

	patternsCmd.AddCommand(
		newPatternsShowCommand(container),
		newPatternsInitCommand(container),
	)
	return patternsCmd
}

func newPatternsShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List the loaded safe and dangerous patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showPatterns(cmd.OutOrStdout(), container)
		},
	}
}

// newPatternsInitCommand materializes the default pattern files so users can
// edit them without triggering a first run.
func newPatternsInitCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default pattern files for editing",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := container.Patterns.Dir()
			safePath := filepath.Join(dir, patterns.SafeFileName)
			if err := patterns.EnsureDefaults(safePath, patterns.CategorySafe, patterns.Defaults(patterns.CategorySafe)); err != nil {
				return fmt.Errorf("failed to write safe patterns: %w", err)
			}
			dangerousPath := filepath.Join(dir, patterns.DangerousFileName)
			if err := patterns.EnsureDefaults(dangerousPath, patterns.CategoryDangerous, patterns.Defaults(patterns.CategoryDangerous)); err != nil {
				return fmt.Errorf("failed to write dangerous patterns: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pattern files written to %s\n", dir)
			return nil
		},
	}
}

func showPatterns(out io.Writer, container *app.Container) error {
	store := container.Patterns

	fmt.Fprintf(out, "Pattern directory: %s\n\n", store.Dir())
	fmt.Fprintf(out, "Safe patterns (%d):\n", len(store.Safe()))
	for _, p := range store.Safe() {
		fmt.Fprintf(out, "  %s\n", p.Raw)
	}
	fmt.Fprintf(out, "\nDangerous patterns (%d):\n", len(store.Dangerous()))
	for _, p := range store.Dangerous() {
		fmt.Fprintf(out, "  %s\n", p.Raw)
	}
	return nil
}
