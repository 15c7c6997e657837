package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/ports"
)

var (
	commandStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	safeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dangerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
)

// Renderer prints commands, verdicts and execution results.
type Renderer struct {
	out io.Writer
}

// NewRenderer constructs a stdout renderer.
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out}
}

// ShowCommand displays a single command with its safety assessment.
func (r *Renderer) ShowCommand(cmd domain.CommandStep, v domain.Verdict) {
	fmt.Fprintln(r.out, headerStyle.Render("AI wants to execute:"))
	fmt.Fprintf(r.out, "  %s\n", commandStyle.Render(string(cmd)))
	fmt.Fprintln(r.out, renderVerdict(v))
}

// ShowSteps displays a multi-step plan, one verdict per step.
func (r *Renderer) ShowSteps(steps []domain.CommandStep, verdicts []domain.Verdict) {
	fmt.Fprintln(r.out, headerStyle.Render(fmt.Sprintf("AI wants to execute %d commands:", len(steps))))
	for i, step := range steps {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, commandStyle.Render(string(step)))
		fmt.Fprintf(r.out, "     %s\n", renderVerdict(verdicts[i]))
	}
}

// ShowAlternatives displays candidate commands with verdicts for selection.
func (r *Renderer) ShowAlternatives(cmds []string, verdicts []domain.Verdict, explanations []string) {
	fmt.Fprintln(r.out, headerStyle.Render("Alternatives:"))
	for i, cmd := range cmds {
		fmt.Fprintf(r.out, "  %d) %s\n", i, commandStyle.Render(cmd))
		fmt.Fprintf(r.out, "     %s\n", renderVerdict(verdicts[i]))
		if i < len(explanations) && explanations[i] != "" {
			fmt.Fprintf(r.out, "     %s\n", dimStyle.Render(explanations[i]))
		}
	}
}

// ShowExplanation prints the command explanation in a framed block.
func (r *Renderer) ShowExplanation(cmd, explanation string) {
	highlighted := highlightTokens(cmd, explanation)
	fmt.Fprintln(r.out, boxStyle.Render(highlighted))
}

// ShowExecution prints captured output and flags failures with the exit code.
func (r *Renderer) ShowExecution(res domain.ExecutionResult) {
	if res.Stdout != "" {
		fmt.Fprint(r.out, res.Stdout)
		if !strings.HasSuffix(res.Stdout, "\n") {
			fmt.Fprintln(r.out)
		}
	}
	if res.Stderr != "" {
		fmt.Fprint(r.out, dimStyle.Render(res.Stderr))
		if !strings.HasSuffix(res.Stderr, "\n") {
			fmt.Fprintln(r.out)
		}
	}
	if !res.Success() {
		fmt.Fprintln(r.out, dangerStyle.Render(fmt.Sprintf("Command failed with exit code %d", res.ExitCode)))
	}
}

// Notice prints a one-line message.
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.out, msg)
}

func renderVerdict(v domain.Verdict) string {
	if v.Safe {
		return safeStyle.Render("✓ " + v.Reason)
	}
	return dangerStyle.Render("⚠ " + v.Reason)
}

// highlightTokens emphasizes every token of the command wherever it appears
// in the explanation text.
func highlightTokens(cmd, explanation string) string {
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(cmd) {
		if _, dup := seen[token]; dup || token == "" {
			continue
		}
		seen[token] = struct{}{}
		explanation = strings.ReplaceAll(explanation, " "+token+" ", " "+commandStyle.Render(token)+" ")
	}
	return explanation
}

var _ ports.Renderer = (*Renderer)(nil)
