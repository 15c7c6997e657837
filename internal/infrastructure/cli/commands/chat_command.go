package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termai-cli/termai/internal/app"
	contextcollector "github.com/termai-cli/termai/internal/infrastructure/context"
	"github.com/termai-cli/termai/internal/services"
)

// NewChatCommand creates the interactive chat command. The conversation
// persists between invocations; --new starts fresh.
func NewChatCommand(container *app.Container) *cobra.Command {
	var (
		fresh   bool
		noCache bool
		model   string
	)

	cmd := &cobra.Command{
		Use:   "chat [message...]",
		Short: "Chat with the assistant (conversation persists between runs)",
		RunE: func(cmd *cobra.Command, args []string) error {
			oracle, err := container.BuildOracle(model, noCache)
			if err != nil {
				return err
			}
			chat := &services.Chat{
				Oracle:     oracle,
				Store:      container.ChatStore,
				Log:        container.Log,
				SystemInfo: contextcollector.SystemDescription(),
			}
			if fresh {
				if err := chat.Reset(); err != nil {
					return fmt.Errorf("failed to reset chat history: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cleaning the chat history.")
			}
			return runChatLoop(cmd, container, chat, strings.Join(args, " "))
		},
	}

	cmd.Flags().BoolVar(&fresh, "new", false, "Discard the saved conversation first")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")
	cmd.Flags().StringVarP(&model, "model", "m", "", "override model name (default from config)")
	return cmd
}

// runChatLoop alternates user input and assistant replies until EOF or an
// empty line.
func runChatLoop(cmd *cobra.Command, container *app.Container, chat *services.Chat, first string) error {
	out := cmd.OutOrStdout()
	message := first

	for {
		if message == "" {
			line, err := container.Prompter.Input("You")
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if strings.TrimSpace(line) == "" {
				return nil
			}
			message = line
		}

		reply, err := chat.Send(cmd.Context(), message)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "AI: %s\n", reply)
		message = ""
	}
}
