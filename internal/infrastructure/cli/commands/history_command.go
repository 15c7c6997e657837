package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/termai-cli/termai/internal/app"
)

// NewHistoryCommand creates the history command with all subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect executed command history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistorySearchCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
		newHistoryLogCommand(container),
	)
	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRecords(cmd.OutOrStdout(), container, limit, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of records")
	return cmd
}

func newHistorySearchCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search runs by prompt or command text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRecords(cmd.OutOrStdout(), container, limit, args[0])
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of records")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all run records and the command log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Audit.Clear(); err != nil {
				return fmt.Errorf("failed to clear run records: %w", err)
			}
			if err := container.CommandLog.Clear(); err != nil {
				return fmt.Errorf("failed to clear command log: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export run records as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Audit.ExportJSON(args[0]); err != nil {
				return fmt.Errorf("failed to export history: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		},
	}
}

// newHistoryLogCommand lists the raw capped command log, the plain list of
// commands that actually executed.
func newHistoryLogCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "List the executed-command log",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := container.CommandLog.Entries()
			if err != nil {
				return fmt.Errorf("failed to read command log: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No commands recorded.")
				return nil
			}
			for i, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i+1, entry)
			}
			return nil
		},
	}
}

func listRecords(out io.Writer, container *app.Container, limit int, search string) error {
	records, err := container.Audit.Records(limit, search)
	if err != nil {
		return fmt.Errorf("failed to retrieve history: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No matching records.")
		return nil
	}
	for _, rec := range records {
		status := "generated"
		if rec.Executed {
			status = fmt.Sprintf("exit %d", rec.ExitCode)
		}
		fmt.Fprintf(out, "%s | %s | %s | %s\n",
			rec.Timestamp.Format(TimestampFormat), status, rec.Prompt, rec.Command)
	}
	return nil
}
