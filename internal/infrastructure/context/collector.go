// Package contextcollector gathers host state the model can use while
// generating commands.
package contextcollector

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/ports"
)

type source struct {
	name    string
	collect func(ctx context.Context) (string, error)
}

// Collector exposes a fixed numbered registry of context sources. The
// numbering is stable: the model picks by index.
type Collector struct {
	sources []source
	log     ports.Logger
}

// NewCollector builds the registry. Environment variables are deliberately
// not offered as a source: they routinely hold secrets.
func NewCollector(log ports.Logger) *Collector {
	return &Collector{
		log: log,
		sources: []source{
			{"List of files in the current directory", collectFiles},
			{"List of processes", collectProcesses},
			{"List of users", collectUsers},
			{"List of groups", collectGroups},
			{"List of network interfaces", collectInterfaces},
			{"List of network routes", collectRoutes},
			{"List of firewall rules", collectFirewall},
		},
	}
}

// Sources returns the registry names in index order.
func (c *Collector) Sources() []string {
	names := make([]string, len(c.sources))
	for i, s := range c.sources {
		names[i] = s.name
	}
	return names
}

// Collect runs the source at index and returns its prompt fragment,
// truncated so a verbose host cannot blow the request size.
func (c *Collector) Collect(ctx context.Context, index int) (string, error) {
	if index < 0 || index >= len(c.sources) {
		return "", fmt.Errorf("context source %d out of range", index)
	}
	text, err := c.sources[index].collect(ctx)
	if err != nil {
		return "", err
	}
	return truncate(text, domain.MaxContextBytes), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func collectFiles(context.Context) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	entries, err := os.ReadDir(cwd)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return fmt.Sprintf("The command is executed in folder %s contining the following list of files:\n%s",
		cwd, strings.Join(names, "\n")), nil
}

func collectProcesses(ctx context.Context) (string, error) {
	var out string
	var err error
	if runtime.GOOS == "windows" {
		out, err = runFirst(ctx,
			[]string{"tasklist", "/fo", "csv"},
			[]string{"wmic", "process", "get", "ProcessId,ParentProcessId,CommandLine", "/format:csv"})
	} else {
		out, err = run(ctx, "ps", "-A", "-o", "pid,ppid,cmd")
	}
	if err != nil {
		return "", err
	}
	return "The following processes are running: " + out + "\n", nil
}

func collectUsers(ctx context.Context) (string, error) {
	var out string
	var err error
	if runtime.GOOS == "windows" {
		out, err = runFirst(ctx,
			[]string{"net", "user"},
			[]string{"wmic", "useraccount", "get", "Name,Description", "/format:csv"})
	} else {
		out, err = run(ctx, "getent", "passwd")
	}
	if err != nil {
		return "", err
	}
	return "The following users are defined: " + out + "\n", nil
}

func collectGroups(ctx context.Context) (string, error) {
	var out string
	var err error
	if runtime.GOOS == "windows" {
		out, err = runFirst(ctx,
			[]string{"net", "localgroup"},
			[]string{"wmic", "group", "get", "Name,Description", "/format:csv"})
	} else {
		out, err = run(ctx, "getent", "group")
	}
	if err != nil {
		return "", err
	}
	return "The following groups are defined: " + out + "\n", nil
}

func collectInterfaces(ctx context.Context) (string, error) {
	var out string
	var err error
	if runtime.GOOS == "windows" {
		out, err = runFirst(ctx,
			[]string{"ipconfig", "/all"},
			[]string{"wmic", "path", "win32_networkadapter", "get", "Name,MACAddress", "/format:csv"})
	} else {
		out, err = run(ctx, "ip", "link")
	}
	if err != nil {
		return "", err
	}
	return "The following network interfaces are defined: " + out + "\n", nil
}

func collectRoutes(ctx context.Context) (string, error) {
	var out string
	var err error
	if runtime.GOOS == "windows" {
		out, err = runFirst(ctx,
			[]string{"route", "print"},
			[]string{"netstat", "-rn"})
	} else {
		out, err = run(ctx, "ip", "route")
	}
	if err != nil {
		return "", err
	}
	return "The following network routes are defined: " + out + "\n", nil
}

func collectFirewall(ctx context.Context) (string, error) {
	var out string
	var err error
	if runtime.GOOS == "windows" {
		out, err = run(ctx, "netsh", "advfirewall", "firewall", "show", "rule", "name=all")
		if err != nil {
			out = "Firewall rules not accessible"
		}
	} else {
		out, err = run(ctx, "sudo", "iptables", "-L")
		if err != nil {
			out = "iptables not accessible"
		}
	}
	return "The following firewall rules are defined: " + out + "\n", nil
}

func run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}

func runFirst(ctx context.Context, commands ...[]string) (string, error) {
	var lastErr error
	for _, argv := range commands {
		out, err := run(ctx, argv[0], argv[1:]...)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return "", lastErr
}

var _ ports.ContextCollector = (*Collector)(nil)
