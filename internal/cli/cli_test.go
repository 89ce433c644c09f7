package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validScenario = `
turn_duration: 10s
participants:
  - name: Kettle
    lines: ["steam rises"]
`

func TestValidateAcceptsAWellFormedScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(validScenario), 0o644); err != nil {
		t.Fatalf("expected the fixture write to succeed, got %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"validate", path})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("expected validation to pass, got %v", err)
	}
	if !strings.Contains(out.String(), "ok") {
		t.Fatalf("expected an ok report, got %q", out.String())
	}
}

func TestValidateRejectsABrokenScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte("turn_duration: 10s\nparticipants: []\n"), 0o644); err != nil {
		t.Fatalf("expected the fixture write to succeed, got %v", err)
	}

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"validate", path})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected a scenario without participants to be rejected")
	}
}

func TestSchemaPrintsTheScenarioSchema(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"schema"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("expected the schema command to succeed, got %v", err)
	}
	for _, field := range []string{"participants", "turn_duration", "decision"} {
		if !strings.Contains(out.String(), field) {
			t.Fatalf("expected the schema to mention %q", field)
		}
	}
}
