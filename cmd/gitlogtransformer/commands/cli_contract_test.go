package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIContract(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	out := b.String()

	if !strings.Contains(out, "Usage:") {
		t.Errorf("expected usage info in root help")
	}
	if !strings.Contains(out, "--compact-summary") {
		t.Errorf("expected the git log invocation in root help")
	}

	requiredFlags := []string{
		"--config",
		"--output",
		"--separator",
		"--verbose",
		"--version",
	}

	for _, f := range requiredFlags {
		if !strings.Contains(out, f) {
			t.Errorf("expected flag %q in root help", f)
		}
	}
}

func TestCLIVersion(t *testing.T) {
	t.Setenv("GITLOGTRANSFORMER_VERSION", "1.2.3")

	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(b.String(), "1.2.3") {
		t.Errorf("expected version in output, got %q", b.String())
	}
}
