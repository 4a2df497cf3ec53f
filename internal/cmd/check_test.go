package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"pybundle/internal/errors"
	"pybundle/internal/profile"
)

// resetCheckFlags restores the check command's flag state after a test.
func resetCheckFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		checkScript = ""
		checkIcon = ""
		checkOpts = nil
		checkProfile = ""
		checkSave = ""
		checkPython = ""
		checkFormat = "text"
	})
}

func newTestCommand(buf *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd
}

func writeScript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.py")
	if err := os.WriteFile(path, []byte("print('hi')\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCheckValidScript(t *testing.T) {
	resetCheckFlags(t)
	checkScript = writeScript(t)
	checkFormat = "json"

	var buf bytes.Buffer
	if err := runCheck(newTestCommand(&buf), nil); err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}

	var report checkReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !report.Ready {
		t.Error("expected report to be ready")
	}
	if report.Accepted["out_name"] != "app" {
		t.Errorf("expected derived out_name 'app', got %v", report.Accepted["out_name"])
	}
}

func TestRunCheckMissingScript(t *testing.T) {
	resetCheckFlags(t)
	checkScript = filepath.Join(t.TempDir(), "missing.py")

	var buf bytes.Buffer
	err := runCheck(newTestCommand(&buf), nil)
	if err == nil {
		t.Fatal("expected error for rejected script")
	}
	if code := errors.CodeOf(err); code != errors.ErrCodeProfileInvalid {
		t.Errorf("unexpected error code %s", code)
	}
	if !strings.Contains(buf.String(), "rejected  script_path") {
		t.Errorf("expected rejection in output, got %q", buf.String())
	}
}

func TestRunCheckNoScript(t *testing.T) {
	resetCheckFlags(t)
	checkOpts = []string{"onefile=true"}

	var buf bytes.Buffer
	err := runCheck(newTestCommand(&buf), nil)
	if err == nil {
		t.Fatal("expected not-ready error without a script")
	}
	if code := errors.CodeOf(err); code != errors.ErrCodeTaskNotReady {
		t.Errorf("unexpected error code %s", code)
	}
}

func TestRunCheckUnknownOpt(t *testing.T) {
	resetCheckFlags(t)
	checkScript = writeScript(t)
	checkOpts = []string{"frobnicate=1"}

	var buf bytes.Buffer
	err := runCheck(newTestCommand(&buf), nil)
	if err == nil {
		t.Fatal("expected error for unknown option")
	}
	if code := errors.CodeOf(err); code != errors.ErrCodeTaskUnknownOption {
		t.Errorf("unexpected error code %s", code)
	}
}

func TestRunCheckSaveAndReplayProfile(t *testing.T) {
	resetCheckFlags(t)
	script := writeScript(t)
	profilePath := filepath.Join(t.TempDir(), "run.yaml")

	checkScript = script
	checkOpts = []string{"onefile=true"}
	checkSave = profilePath

	var buf bytes.Buffer
	if err := runCheck(newTestCommand(&buf), nil); err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}

	p, err := profile.Load(profilePath)
	if err != nil {
		t.Fatalf("profile.Load() error = %v", err)
	}
	if p.Options["script_path"] != script {
		t.Errorf("saved profile script_path = %v, want %v", p.Options["script_path"], script)
	}
	if p.Options["onefile"] != true {
		t.Errorf("saved profile onefile = %v, want true", p.Options["onefile"])
	}

	// Replay the saved profile.
	checkScript = ""
	checkOpts = nil
	checkSave = ""
	checkProfile = profilePath

	buf.Reset()
	if err := runCheck(newTestCommand(&buf), nil); err != nil {
		t.Fatalf("replay runCheck() error = %v", err)
	}
	if !strings.Contains(buf.String(), "ready to package") {
		t.Errorf("expected replay to be ready, got %q", buf.String())
	}
}

func TestParseOptValue(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"true", true},
		{"false", false},
		{"dist", "dist"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := parseOptValue(tt.in); got != tt.want {
			t.Errorf("parseOptValue(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCheckReportString(t *testing.T) {
	report := checkReport{
		Ready:    false,
		Accepted: map[string]interface{}{"onefile": true},
		Rejected: []string{"icon_path"},
		Warnings: []string{"pyinstaller is not installed in /usr/bin/python3"},
	}

	out := report.String()
	for _, want := range []string{"accepted", "onefile", "rejected  icon_path", "warning", "not ready"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
