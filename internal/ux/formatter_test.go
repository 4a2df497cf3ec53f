package ux

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type stringerReport struct{ text string }

func (r stringerReport) String() string { return r.text }

func TestNewFormatterUnknown(t *testing.T) {
	_, err := NewFormatter("xml", nil)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}

	if err := f.Format(map[string]string{"kind": "venv"}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["kind"] != "venv" {
		t.Errorf("unexpected output: %v", decoded)
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("yaml", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}

	if err := f.Format(map[string]string{"kind": "conda"}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(buf.String(), "kind: conda") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("text", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}

	if err := f.Format(stringerReport{"Python 3.11.7"}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if buf.String() != "Python 3.11.7\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}

	if err := f.Format(struct{}{}); err == nil {
		t.Error("expected error for non-Stringer data")
	}
}
