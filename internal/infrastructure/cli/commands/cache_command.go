package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/termai-cli/termai/internal/app"
)

// NewCacheCommand creates the cache command with all subcommands.
func NewCacheCommand(container *app.Container) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the response cache",
	}

	cacheCmd.AddCommand(
		newCacheStatsCommand(container),
		newCacheClearCommand(container),
	)
	return cacheCmd
}

func newCacheStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache location, entry count and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCacheStats(cmd.OutOrStdout(), container)
		},
	}
}

func newCacheClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Cache.Clear(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
			return nil
		},
	}
}

func showCacheStats(out io.Writer, container *app.Container) error {
	dir := container.Cache.Dir()
	size, err := directorySize(dir)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to calculate cache size: %w", err)
	}

	fmt.Fprintf(out, "Cache directory: %s\n", dir)
	fmt.Fprintf(out, "Entries: %d\n", container.Cache.Len())
	fmt.Fprintf(out, "Size: %d bytes\n", size)
	fmt.Fprintf(out, "Enabled: %v\n", container.Config.Cache.Enabled)
	fmt.Fprintf(out, "TTL: %d minutes\n", container.Config.Cache.TTLMinutes)
	return nil
}

func directorySize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}
