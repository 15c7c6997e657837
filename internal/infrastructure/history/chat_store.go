package history

import (
	"bytes"
	"encoding/gob"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/pkg/filesystem"
	"github.com/termai-cli/termai/internal/ports"
)

// ChatFile persists the chat conversation between invocations.
type ChatFile struct {
	path string
}

// NewChatFile stores the conversation under the data directory.
func NewChatFile(path string) *ChatFile {
	if path == "" {
		path = filepath.Join(filesystem.DataDir(), "chat_history")
	}
	return &ChatFile{path: path}
}

// Load returns the saved conversation, empty when nothing was saved yet or
// the file does not decode.
func (c *ChatFile) Load() ([]domain.ChatMessage, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var history []domain.ChatMessage
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&history); err != nil {
		return nil, nil
	}
	return history, nil
}

// Save keeps at most the newest ChatHistoryCap messages.
func (c *ChatFile) Save(history []domain.ChatMessage) error {
	if len(history) > domain.ChatHistoryCap {
		history = history[len(history)-domain.ChatHistoryCap:]
	}
	if err := os.MkdirAll(filepath.Dir(c.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(history); err != nil {
		return err
	}
	return os.WriteFile(c.path, buf.Bytes(), domain.SecureFilePermissions)
}

// Clear discards the saved conversation.
func (c *ChatFile) Clear() error {
	err := os.Remove(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

var _ ports.ChatStore = (*ChatFile)(nil)
