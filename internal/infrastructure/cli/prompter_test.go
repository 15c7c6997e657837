package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirmDeclinesOnlyOnExplicitN(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"\n", true},  // bare Enter accepts
		{"x\n", true}, // unrecognized answers accept
		{"n\n", false},
		{"N\n", false},
		{" n \n", false},
	}
	for _, tc := range cases {
		p := NewPrompter(strings.NewReader(tc.input), &bytes.Buffer{})
		got, err := p.Confirm("Execute?")
		if err != nil {
			t.Fatalf("Confirm(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Confirm(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestSelectRejectsInvalidAnswers(t *testing.T) {
	cases := []struct {
		input   string
		wantIdx int
		wantOK  bool
	}{
		{"0\n", 0, true},
		{"2\n", 2, true},
		{"3\n", 0, false}, // out of range for n=3
		{"-1\n", 0, false},
		{"abc\n", 0, false},
		{"\n", 0, false},
	}
	for _, tc := range cases {
		p := NewPrompter(strings.NewReader(tc.input), &bytes.Buffer{})
		idx, ok, err := p.Select("Pick", 3)
		if err != nil {
			t.Fatalf("Select(%q): %v", tc.input, err)
		}
		if ok != tc.wantOK || (ok && idx != tc.wantIdx) {
			t.Errorf("Select(%q) = (%d, %v), want (%d, %v)", tc.input, idx, ok, tc.wantIdx, tc.wantOK)
		}
	}
}

func TestInputTrimsWhitespace(t *testing.T) {
	p := NewPrompter(strings.NewReader("  sk-test-key  \n"), &bytes.Buffer{})
	got, err := p.Input("API key")
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got != "sk-test-key" {
		t.Fatalf("got %q", got)
	}
}
