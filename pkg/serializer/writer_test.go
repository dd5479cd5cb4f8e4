package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type testItem struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testItem{
		{Name: "Dessert", Count: 12},
		{Name: "Breakfast", Count: 7},
	}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testItem
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("expected 2 items, got %d", len(result))
	}
	if result[0].Name != "Dessert" || result[0].Count != 12 {
		t.Errorf("unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testItem{Name: "Vegetarian", Count: 3}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testItem
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal YAML: %v", err)
	}
	if result.Name != "Vegetarian" || result.Count != 3 {
		t.Errorf("unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := struct {
		Name       string
		Categories []string
	}{
		Name:       "Pad Thai",
		Categories: []string{"Dinner", "Quick"},
	}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "Name", "Pad Thai", "Categories.[0]", "Dinner"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriter_SerializeTableStringer(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	id := uuid.MustParse("a6b9b35e-39a7-4f5e-b327-c3ba94e1f9a0")
	data := struct {
		ID uuid.UUID
	}{ID: id}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if !strings.Contains(buf.String(), id.String()) {
		t.Errorf("expected uuid rendered as string, got:\n%s", buf.String())
	}
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(struct{}{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("expected <empty> marker, got %q", buf.String())
	}
}

func TestNewWriter_UnknownFormatDefaults(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if err := writer.Serialize(testItem{Name: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "name: x") {
		t.Errorf("expected YAML fallback, got %q", buf.String())
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	writer := NewFileWriterOrStdout(FormatJSON, path)
	if err := writer.Serialize(testItem{Name: "Soup", Count: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "Soup") {
		t.Errorf("output file missing data: %s", data)
	}

	// Empty path falls back to stdout; Close must be a no-op.
	stdout := NewFileWriterOrStdout(FormatYAML, "")
	if err := stdout.Close(); err != nil {
		t.Errorf("Close on stdout writer should not error: %v", err)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format  Format
		unknown bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("csv"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.unknown {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.unknown)
		}
	}
}
