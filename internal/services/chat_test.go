package services

import (
	"context"
	"strings"
	"testing"

	"github.com/termai-cli/termai/internal/domain"
)

type memoryChatStore struct {
	history []domain.ChatMessage
}

func (s *memoryChatStore) Load() ([]domain.ChatMessage, error) { return s.history, nil }
func (s *memoryChatStore) Save(h []domain.ChatMessage) error   { s.history = h; return nil }
func (s *memoryChatStore) Clear() error                        { s.history = nil; return nil }

type echoOracle struct {
	fakeOracle
	seen []domain.ChatMessage
}

func (o *echoOracle) Chat(_ context.Context, history []domain.ChatMessage) (string, error) {
	o.seen = history
	return "reply", nil
}

func TestChatInjectsSystemMessageOnce(t *testing.T) {
	store := &memoryChatStore{}
	oracle := &echoOracle{}
	chat := &Chat{Oracle: oracle, Store: store, Log: nopLogger{}, SystemInfo: "linux like debian"}

	if _, err := chat.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := chat.Send(context.Background(), "again"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	systems := 0
	for _, msg := range store.history {
		if msg.Role == domain.RoleSystem {
			systems++
		}
	}
	if systems != 1 {
		t.Fatalf("expected one system message, got %d", systems)
	}
	if !strings.Contains(store.history[0].Content, "linux like debian") {
		t.Fatalf("system message missing platform: %q", store.history[0].Content)
	}
}

func TestChatPersistsTurns(t *testing.T) {
	store := &memoryChatStore{}
	chat := &Chat{Oracle: &echoOracle{}, Store: store, Log: nopLogger{}, SystemInfo: "linux"}

	reply, err := chat.Send(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if reply != "reply" {
		t.Fatalf("got %q", reply)
	}
	// system + user + assistant
	if len(store.history) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(store.history))
	}
	if store.history[2].Role != domain.RoleAssistant || store.history[2].Content != "reply" {
		t.Fatalf("assistant turn not saved: %+v", store.history[2])
	}
}

func TestTrimToWordBudgetKeepsSystemMessage(t *testing.T) {
	long := strings.Repeat("word ", 500)
	history := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: "be brief"},
		{Role: domain.RoleUser, Content: long},
		{Role: domain.RoleAssistant, Content: long},
		{Role: domain.RoleUser, Content: "latest"},
	}

	trimmed := trimToWordBudget(history, 600)
	if trimmed[0].Role != domain.RoleSystem {
		t.Fatal("system message must survive trimming")
	}
	if wordCount(trimmed) > 600 {
		t.Fatalf("still over budget: %d words", wordCount(trimmed))
	}
	last := trimmed[len(trimmed)-1]
	if last.Content != "latest" {
		t.Fatalf("newest message must survive, got %q", last.Content)
	}
}
