// Package cli hosts the cobra commands and terminal adapters.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termai-cli/termai/internal/app"
	"github.com/termai-cli/termai/internal/infrastructure/cli/commands"
	"github.com/termai-cli/termai/internal/ports"
	"github.com/termai-cli/termai/internal/services"
)

// ExitCodeError carries a process exit code through cobra's error return.
type ExitCodeError struct {
	Code int
}

func (e ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, debug bool) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, debug)
	if err != nil {
		return nil, err
	}
	container.Prompter = NewPrompter(nil, nil)
	container.Renderer = NewRenderer(nil)

	var (
		explain      bool
		alternatives int
		autoContext  bool
		contextIdx   int
		noCache      bool
		verbose      bool
		model        string
	)

	root := &cobra.Command{
		Use:   "termai [request...]",
		Short: "termai - natural language shell assistant",
		Long:  "termai turns a natural-language request into shell commands, shows a safety assessment and runs them after confirmation.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			oracle, err := container.BuildOracle(model, noCache)
			if err != nil {
				return err
			}

			task := strings.Join(args, " ")
			contextPrompt, err := resolveContext(cmd.Context(), container, oracle, task, autoContext, contextIdx)
			if err != nil {
				return err
			}

			assist := &services.Assist{
				Config:     container.Config,
				Oracle:     oracle,
				Classifier: container.Classifier,
				Executor:   container.Executor,
				CommandLog: container.CommandLog,
				Audit:      container.Audit,
				Prompter:   container.Prompter,
				Renderer:   container.Renderer,
				Log:        container.Log,
			}
			code, err := assist.Run(cmd.Context(), services.Request{
				Task:          task,
				ContextPrompt: contextPrompt,
				Explain:       explain,
				Alternatives:  alternatives,
			})
			if err != nil {
				return err
			}
			if code != 0 {
				return ExitCodeError{Code: code}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolVarP(&explain, "explain", "e", false, "explain the generated command")
	root.Flags().IntVarP(&alternatives, "alternatives", "n", 0, "number of alternative commands offered on decline")
	root.Flags().BoolVarP(&autoContext, "auto-context", "c", false, "let the model pick which host context to include")
	root.Flags().IntVarP(&contextIdx, "context", "C", -1, "include a specific context source by index")
	root.Flags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")
	root.Flags().StringVarP(&model, "model", "m", "", "override model name (default from config)")
	root.PersistentFlags().BoolVar(&verbose, "debug", false, "enable verbose logging")

	root.AddCommand(commands.NewChatCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewPatternsCommand(container))
	root.AddCommand(commands.NewCacheCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

// resolveContext collects host context for the prompt when requested, either
// at a fixed index or by asking the model which source would help.
func resolveContext(ctx context.Context, container *app.Container, oracle ports.Oracle, task string, auto bool, index int) (string, error) {
	if !auto && index < 0 {
		return "", nil
	}

	sources := container.Collector.Sources()
	if index < 0 {
		picked, err := oracle.PickContext(ctx, task, sources)
		if err != nil {
			return "", err
		}
		index = picked
	}
	if index < 0 || index >= len(sources) {
		return "", nil
	}

	container.Renderer.Notice(fmt.Sprintf("Including context: %s", sources[index]))
	collected, err := container.Collector.Collect(ctx, index)
	if err != nil {
		container.Log.Warn("context collection failed", map[string]interface{}{
			"source": sources[index],
			"error":  err.Error(),
		})
		return "", nil
	}
	return collected, nil
}
