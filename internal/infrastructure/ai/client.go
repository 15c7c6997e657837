// Package ai talks to OpenAI-compatible chat completion endpoints.
package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	openaiparam "github.com/openai/openai-go/v3/packages/param"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/ports"
)

const (
	commandSystemPrompt = "You can output only terminal commands! No info! No comments. No backticks. This system is running on %s. If on Windows, use PowerShell or CMD commands, NOT Linux/Unix commands."
	explainSystemPrompt = "Explain what is the purpose of command with details for each option."
	pickSystemPrompt    = "You can output only a number."
	fixSystemPrompt     = "You can output only terminal commands! No info! No comments. No backticks. You fix broken shell commands. This system is running on %s."

	alternativesMaxTokens = 50
	explainMaxTokens      = 250
	pickMaxTokens         = 4
)

// Client implements ports.Oracle on top of the OpenAI SDK. Any endpoint
// speaking the chat completions protocol works (Ollama, LocalAI, Azure).
type Client struct {
	client    openai.Client
	model     string
	baseURL   string
	maxTokens int
	sysInfo   string
	log       ports.Logger
}

// Options configures a Client.
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	// SystemInfo describes the host OS for the generation prompts.
	SystemInfo string
}

// NewClient builds the oracle.
func NewClient(opts Options, log ports.Logger) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	reqOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = domain.DefaultMaxTokens
	}
	return &Client{
		client:    openai.NewClient(reqOpts...),
		model:     opts.Model,
		baseURL:   opts.BaseURL,
		maxTokens: maxTokens,
		sysInfo:   opts.SystemInfo,
		log:       log,
	}, nil
}

// GenerateCommand asks for a single shell command (or a newline-separated
// sequence) accomplishing the task.
func (c *Client) GenerateCommand(ctx context.Context, task, contextPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(commandSystemPrompt, c.sysInfo)),
			openai.UserMessage(fmt.Sprintf("Generate a single bash command to %s\n%s", task, contextPrompt)),
		},
		MaxTokens:   openaiparam.NewOpt(int64(c.maxTokens)),
		Temperature: openaiparam.NewOpt(0.0),
		TopP:        openaiparam.NewOpt(1.0),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from %s (model %s)", c.Endpoint(), c.model)
	}
	return sanitizeCommand(resp.Choices[0].Message.Content), nil
}

// GenerateAlternatives samples n candidate commands at high temperature and
// deduplicates them, preserving first-appearance order.
func (c *Client) GenerateAlternatives(ctx context.Context, task string, n int) ([]string, error) {
	if n <= 0 {
		n = domain.DefaultAlternatives
	}
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(commandSystemPrompt, c.sysInfo)),
			openai.UserMessage(fmt.Sprintf("Generate a single bash command to %s", task)),
		},
		MaxTokens:   openaiparam.NewOpt(int64(alternativesMaxTokens)),
		Temperature: openaiparam.NewOpt(0.9),
		TopP:        openaiparam.NewOpt(1.0),
		N:           openaiparam.NewOpt(int64(n)),
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	seen := make(map[string]struct{}, len(resp.Choices))
	var alts []string
	for _, choice := range resp.Choices {
		cmd := sanitizeCommand(choice.Message.Content)
		if cmd == "" {
			continue
		}
		if _, dup := seen[cmd]; dup {
			continue
		}
		seen[cmd] = struct{}{}
		alts = append(alts, cmd)
	}
	if len(alts) == 0 {
		return nil, fmt.Errorf("no valid commands generated")
	}
	return alts, nil
}

// GenerateFix asks for a corrected command after failedCmd produced stderr.
func (c *Client) GenerateFix(ctx context.Context, failedCmd, stderr string) (string, error) {
	user := fmt.Sprintf("The command `%s` failed with this error:\n%s\nGenerate a single corrected bash command.", failedCmd, stderr)
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(fixSystemPrompt, c.sysInfo)),
			openai.UserMessage(user),
		},
		MaxTokens:   openaiparam.NewOpt(int64(c.maxTokens)),
		Temperature: openaiparam.NewOpt(0.0),
		TopP:        openaiparam.NewOpt(1.0),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from %s (model %s)", c.Endpoint(), c.model)
	}
	return sanitizeCommand(resp.Choices[0].Message.Content), nil
}

// Explain describes what cmd does, option by option.
func (c *Client) Explain(ctx context.Context, cmd string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(explainSystemPrompt),
			openai.UserMessage(cmd),
		},
		MaxTokens:   openaiparam.NewOpt(int64(explainMaxTokens)),
		Temperature: openaiparam.NewOpt(0.0),
		TopP:        openaiparam.NewOpt(1.0),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("could not generate explanation")
	}
	return strings.ReplaceAll(resp.Choices[0].Message.Content, "\n\n", "\n"), nil
}

// PickContext shows the model a numbered menu of context sources and returns
// the chosen index, or -1 when none applies or the answer does not parse.
func (c *Client) PickContext(ctx context.Context, task string, options []string) (int, error) {
	var menu strings.Builder
	for i, name := range options {
		fmt.Fprintf(&menu, "%d ) %s\n", i, name)
	}
	user := fmt.Sprintf(
		"If you need to generate a single terminal command to %s, which of this context you need:\n%s\n Your output is a number.\n If none of the above context is usefull the output is -1.\n",
		task, menu.String())

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(pickSystemPrompt),
			openai.UserMessage(user),
		},
		MaxTokens:   openaiparam.NewOpt(int64(pickMaxTokens)),
		Temperature: openaiparam.NewOpt(0.0),
		TopP:        openaiparam.NewOpt(1.0),
	})
	if err != nil {
		return -1, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return -1, nil
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	idx, err := strconv.Atoi(answer)
	if err != nil {
		c.log.Warn("context pick did not parse", map[string]interface{}{"answer": answer})
		return -1, nil
	}
	if idx < -1 || idx >= len(options) {
		return -1, nil
	}
	return idx, nil
}

// Chat sends the full conversation and returns the assistant reply.
func (c *Client) Chat(ctx context.Context, history []domain.ChatMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case domain.RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case domain.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from %s (model %s)", c.Endpoint(), c.model)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Endpoint reports the configured base URL for error messages.
func (c *Client) Endpoint() string {
	if c.baseURL == "" {
		return "Default (OpenAI)"
	}
	return c.baseURL
}

// Model reports the configured model name.
func (c *Client) Model() string { return c.model }

func sanitizeCommand(raw string) string {
	cmd := strings.ReplaceAll(raw, "```bash\n", "")
	cmd = strings.ReplaceAll(cmd, "\n```", "")
	cmd = strings.ReplaceAll(cmd, "```", "")
	return strings.TrimSpace(cmd)
}

var _ ports.Oracle = (*Client)(nil)
