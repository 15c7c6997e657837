package domain

// Config mirrors ~/.termai/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Model               ModelSettings     `yaml:"model"`
	Safety              SafetySettings    `yaml:"safety"`
	Execution           ExecutionSettings `yaml:"execution"`
	History             HistorySettings   `yaml:"history"`
	Cache               CacheSettings     `yaml:"cache"`
}

// ModelSettings points the oracle at an OpenAI-compatible endpoint.
type ModelSettings struct {
	// Name is the model identifier sent with every request.
	Name string `yaml:"name"`
	// BaseURL overrides the default OpenAI endpoint. Leave empty for
	// api.openai.com; set for Ollama, LocalAI, Azure and friends.
	BaseURL string `yaml:"base_url"`
	// AuthEnvVar names the environment variable checked for the API key
	// before falling back to the credentials file.
	AuthEnvVar string `yaml:"auth_env_var"`
	MaxTokens  int    `yaml:"max_tokens"`
}

// SafetySettings defines classifier behavior.
type SafetySettings struct {
	// Mode: 0 = always confirm, 1 = auto-run commands classified Safe.
	Mode SafetyMode `yaml:"mode"`
	// PatternsDir is where safe_patterns.txt / dangerous_patterns.txt live.
	// Empty means the current working directory.
	PatternsDir string `yaml:"patterns_dir"`
}

// ExecutionSettings controls how commands run.
type ExecutionSettings struct {
	// Shell overrides shell detection ("auto" or empty to detect).
	Shell string `yaml:"shell"`
	// AutoCorrect enables the one-shot fix round after a failed command.
	AutoCorrect bool `yaml:"auto_correct"`
	// NoShellHistory suppresses writes to the shell's native history file.
	NoShellHistory bool `yaml:"no_shell_history"`
	// Alternatives is how many candidate commands to request on decline.
	Alternatives int `yaml:"alternatives"`
}

// HistorySettings sizes the persistent command log.
type HistorySettings struct {
	CommandLogCap int `yaml:"command_log_cap"`
}

// CacheSettings controls oracle response memoization.
type CacheSettings struct {
	Enabled    bool `yaml:"enabled"`
	MaxEntries int  `yaml:"max_entries"`
	TTLMinutes int  `yaml:"ttl_minutes"`
}
