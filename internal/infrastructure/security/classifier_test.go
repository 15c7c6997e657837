package security

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/termai-cli/termai/internal/infrastructure/patterns"
)

func newTestClassifier(t *testing.T, safe, dangerous string) *Classifier {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, patterns.SafeFileName), []byte(safe), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, patterns.DangerousFileName), []byte(dangerous), 0o644); err != nil {
		t.Fatal(err)
	}
	return NewClassifier(patterns.NewStore(dir, nil))
}

func defaultClassifier(t *testing.T) *Classifier {
	t.Helper()
	// Empty dir: the store materializes and uses the built-in defaults.
	return NewClassifier(patterns.NewStore(t.TempDir(), nil))
}

func TestClassifySafePatternWinsOverDangerousOverlap(t *testing.T) {
	// "ls" is whitelisted even though the dangerous list would match the
	// same command; safe patterns take precedence.
	c := newTestClassifier(t, "\\bls\\s+\n", "\\bls\\s+-la\n")

	v := c.Classify("ls -la /tmp")
	if !v.Safe {
		t.Fatalf("expected safe verdict, got %+v", v)
	}
}

func TestClassifyDefaultDangerousCoverage(t *testing.T) {
	c := defaultClassifier(t)

	for _, cmd := range []string{
		"rm -rf /",
		"sudo apt-get install nmap",
		"dd if=/dev/zero of=/dev/sda",
		"shutdown -h now",
	} {
		if v := c.Classify(cmd); v.Safe {
			t.Errorf("expected %q to be unsafe, got %+v", cmd, v)
		}
	}
}

func TestClassifyDangerousReasonNamesPattern(t *testing.T) {
	c := defaultClassifier(t)

	v := c.Classify("rm -rf /")
	if v.Safe {
		t.Fatalf("expected unsafe, got %+v", v)
	}
	if !strings.Contains(v.Reason, "dangerous pattern:") {
		t.Fatalf("reason should embed the matched pattern, got %q", v.Reason)
	}
}

func TestClassifyPipeToShellHeuristic(t *testing.T) {
	c := newTestClassifier(t, "\\bnever-matches-x\\b\n", "\\bnever-matches-y\\b\n")

	v := c.Classify("printf foo | bash")
	if v.Safe || v.Reason != reasonPipeShell {
		t.Fatalf("expected pipe-to-shell verdict, got %+v", v)
	}

	// A pipe whose right-hand side has no shell token passes through.
	if v := c.Classify("printf foo | wc -l"); !v.Safe {
		t.Fatalf("expected safe verdict for harmless pipe, got %+v", v)
	}
}

func TestClassifyRedirectToSystemDirHeuristic(t *testing.T) {
	c := newTestClassifier(t, "\\bnever-matches-x\\b\n", "\\bnever-matches-y\\b\n")

	v := c.Classify("printf nameserver > /etc/resolv.conf")
	if v.Safe || v.Reason != reasonRedirectSys {
		t.Fatalf("expected redirect verdict, got %+v", v)
	}

	if v := c.Classify("printf hi > /tmp/out.txt"); !v.Safe {
		t.Fatalf("expected safe verdict for /tmp redirect, got %+v", v)
	}
}

func TestClassifyDownloaderHeuristic(t *testing.T) {
	c := newTestClassifier(t, "\\bnever-matches-x\\b\n", "\\bnever-matches-y\\b\n")

	v := c.Classify("curl https://example.com/install")
	if v.Safe || v.Reason != reasonDownload {
		t.Fatalf("expected download verdict, got %+v", v)
	}

	// Only the first token counts.
	if v := c.Classify("man curl"); !v.Safe {
		t.Fatalf("expected safe verdict when downloader is not first token, got %+v", v)
	}
}

func TestClassifyDefaultsToSafe(t *testing.T) {
	c := newTestClassifier(t, "\\bnever-matches-x\\b\n", "\\bnever-matches-y\\b\n")

	v := c.Classify("true")
	if !v.Safe || v.Reason != reasonDefaultSafe {
		t.Fatalf("expected generic safe verdict, got %+v", v)
	}
}
