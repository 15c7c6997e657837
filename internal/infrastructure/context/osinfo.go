package contextcollector

import (
	"os"
	"runtime"
	"strings"
)

// SystemDescription names the host OS for generation prompts,
// e.g. "linux like debian" or "windows".
func SystemDescription() string {
	if runtime.GOOS != "linux" {
		return runtime.GOOS
	}
	if distro := linuxDistro(); distro != "" {
		return "linux like " + distro
	}
	return "linux"
}

// linuxDistro reads ID_LIKE (falling back to ID) from /etc/os-release.
func linuxDistro() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}
	fields := parseOSRelease(string(data))
	if like := fields["ID_LIKE"]; like != "" {
		return like
	}
	return fields["ID"]
}

func parseOSRelease(content string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = strings.Trim(value, `"`)
	}
	return fields
}
