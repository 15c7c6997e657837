package ai

import "testing"

func TestSanitizeCommand(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ls -la", "ls -la"},
		{"  ls -la \n", "ls -la"},
		{"```bash\nls -la\n```", "ls -la"},
		{"```\ndf -h\n```", "df -h"},
	}
	for _, tc := range cases {
		if got := sanitizeCommand(tc.in); got != tc.want {
			t.Errorf("sanitizeCommand(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(Options{Model: "gpt-4o-mini"}, nil); err == nil {
		t.Fatal("expected error without API key")
	}
}
