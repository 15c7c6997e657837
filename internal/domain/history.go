package domain

import "time"

// RunRecord captures executed or generated command metadata for the audit log.
type RunRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Prompt     string    `json:"prompt"`
	Command    string    `json:"command"`
	Model      string    `json:"model"`
	Executed   bool      `json:"executed"`
	Success    bool      `json:"success"`
	ExitCode   int       `json:"exit_code"`
	Safe       bool      `json:"safe"`
	Reason     string    `json:"reason"`
	DurationMS int64     `json:"duration_ms"`
}

// ChatMessage follows the role/content pair required by chat APIs.
type ChatMessage struct {
	Role    string
	Content string
}

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
