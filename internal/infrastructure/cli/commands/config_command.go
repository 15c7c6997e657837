package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termai-cli/termai/internal/app"
	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/infrastructure/config"
)

// NewConfigCommand creates the interactive configuration command.
func NewConfigCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Configure API key, endpoint, model and safety mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigMenu(cmd.OutOrStdout(), container)
		},
	}
}

func runConfigMenu(out io.Writer, container *app.Container) error {
	cfg := container.Config

	fmt.Fprintln(out, "=== termai configuration ===")
	if config.HasStoredAPIKey() {
		fmt.Fprintln(out, "API key: configured (stored)")
	} else {
		fmt.Fprintf(out, "API key: not stored (checked via $%s)\n", cfg.Model.AuthEnvVar)
	}
	fmt.Fprintf(out, "API base URL: %s\n", displayBaseURL(cfg.Model.BaseURL))
	fmt.Fprintf(out, "Model: %s\n", cfg.Model.Name)
	fmt.Fprintf(out, "Safety mode: %s\n", describeSafetyMode(cfg.Safety.Mode))
	fmt.Fprintf(out, "Auto-correct: %v\n", cfg.Execution.AutoCorrect)

	fmt.Fprintln(out, "\nOptions:")
	fmt.Fprintln(out, "1. Update API key")
	fmt.Fprintln(out, "2. Update API base URL (for OpenAI-compatible APIs)")
	fmt.Fprintln(out, "3. Update model name")
	fmt.Fprintln(out, "4. Update safety mode")
	fmt.Fprintln(out, "5. Reset to defaults")
	fmt.Fprintln(out, "6. Continue with current settings")

	choice, err := container.Prompter.Input("Select option (1-6)")
	if err != nil {
		return err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		key, err := container.Prompter.Input("Enter new API key")
		if err != nil {
			return err
		}
		if key == "" {
			fmt.Fprintln(out, "API key not changed.")
			return nil
		}
		if err := config.WriteAPIKey(key); err != nil {
			return fmt.Errorf("failed to store API key: %w", err)
		}
		fmt.Fprintln(out, "API key updated.")
		return nil

	case "2":
		fmt.Fprintln(out, "Popular OpenAI-compatible APIs:")
		fmt.Fprintln(out, "- OpenAI: https://api.openai.com/v1 (default)")
		fmt.Fprintln(out, "- Azure OpenAI: https://your-resource.openai.azure.com/")
		fmt.Fprintln(out, "- LocalAI: http://localhost:8080/v1")
		fmt.Fprintln(out, "- Ollama: http://localhost:11434/v1")
		fmt.Fprintln(out, "- LM Studio: http://localhost:1234/v1")
		url, err := container.Prompter.Input("Enter API base URL (leave empty for OpenAI default)")
		if err != nil {
			return err
		}
		cfg.Model.BaseURL = url
		if err := container.ConfigLoader.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(out, "API base URL set to: %s\n", displayBaseURL(url))
		return nil

	case "3":
		name, err := container.Prompter.Input(fmt.Sprintf("Enter model name (current: %s)", cfg.Model.Name))
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Fprintln(out, "Model not changed.")
			return nil
		}
		cfg.Model.Name = name
		if err := container.ConfigLoader.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(out, "Model set to: %s\n", name)
		return nil

	case "4":
		fmt.Fprintln(out, "0. Always ask for confirmation")
		fmt.Fprintln(out, "1. Auto-run safe commands")
		mode, err := container.Prompter.Input("Select safety mode (0-1)")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(mode) {
		case "0":
			cfg.Safety.Mode = domain.SafetyConfirmAlways
		case "1":
			cfg.Safety.Mode = domain.SafetyAutoRunSafe
		default:
			fmt.Fprintln(out, "Safety mode not changed.")
			return nil
		}
		if err := container.ConfigLoader.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(out, "Safety mode set to: %s\n", describeSafetyMode(cfg.Safety.Mode))
		return nil

	case "5":
		if err := container.ConfigLoader.Save(config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		if err := config.ClearAPIKey(); err != nil {
			return fmt.Errorf("failed to remove stored API key: %w", err)
		}
		fmt.Fprintln(out, "Configuration reset to defaults.")
		return nil

	default:
		fmt.Fprintln(out, "Keeping current settings.")
		return nil
	}
}

func displayBaseURL(url string) string {
	if url == "" {
		return "Default (OpenAI)"
	}
	return url
}

func describeSafetyMode(mode domain.SafetyMode) string {
	if mode == domain.SafetyAutoRunSafe {
		return "Auto-run safe commands"
	}
	return "Always ask for confirmation"
}
