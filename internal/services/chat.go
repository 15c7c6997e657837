package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/ports"
)

// Chat is the free-form conversation use case. The conversation persists
// across invocations, trimmed to a word budget so it never grows unbounded.
type Chat struct {
	Oracle ports.Oracle
	Store  ports.ChatStore
	Log    ports.Logger
	// SystemInfo describes the host OS for the initial system message.
	SystemInfo string
}

// Send appends the user message to the conversation, asks the oracle for a
// reply and persists the updated history.
func (c *Chat) Send(ctx context.Context, message string) (string, error) {
	history, err := c.Store.Load()
	if err != nil {
		c.Log.Warn("chat history load failed", map[string]interface{}{"error": err.Error()})
		history = nil
	}

	history = trimToWordBudget(history, domain.ChatHistoryWordBudget)
	history = ensureSystemMessage(history, c.SystemInfo)
	history = append(history, domain.ChatMessage{Role: domain.RoleUser, Content: message})

	reply, err := c.Oracle.Chat(ctx, history)
	if err != nil {
		return "", err
	}
	history = append(history, domain.ChatMessage{Role: domain.RoleAssistant, Content: reply})

	if err := c.Store.Save(history); err != nil {
		c.Log.Warn("chat history save failed", map[string]interface{}{"error": err.Error()})
	}
	return reply, nil
}

// Reset discards the persisted conversation.
func (c *Chat) Reset() error {
	return c.Store.Clear()
}

// trimToWordBudget drops the oldest non-system messages until the estimated
// word count fits the budget.
func trimToWordBudget(history []domain.ChatMessage, budget int) []domain.ChatMessage {
	for wordCount(history) > budget {
		dropped := false
		for i, msg := range history {
			if msg.Role == domain.RoleSystem {
				continue
			}
			history = append(history[:i], history[i+1:]...)
			dropped = true
			break
		}
		if !dropped {
			break
		}
	}
	return history
}

func wordCount(history []domain.ChatMessage) int {
	total := 0
	for _, msg := range history {
		total += len(strings.Fields(msg.Content))
	}
	return total
}

func ensureSystemMessage(history []domain.ChatMessage, sysInfo string) []domain.ChatMessage {
	for _, msg := range history {
		if msg.Role == domain.RoleSystem {
			return history
		}
	}
	content := fmt.Sprintf("You are a helpful assistant. Answer as concisely as possible. This machine is running %s.", sysInfo)
	return append([]domain.ChatMessage{{Role: domain.RoleSystem, Content: content}}, history...)
}
