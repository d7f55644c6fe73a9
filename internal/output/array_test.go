package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestArrayWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	writer := NewArrayWriter(&buf)

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty output = %q, want []", got)
	}
}

func TestArrayWriter_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	writer := NewArrayWriter(&buf)

	records := []TestRecord{
		{ID: 1, Name: "Test & One"},
		{ID: 2, Name: "Tëst Two"},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if writer.Count() != 2 {
		t.Errorf("Count = %d, want 2", writer.Count())
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	want := `[
  {
    "id": 1,
    "name": "Test & One"
  },
  {
    "id": 2,
    "name": "Tëst Two"
  }
]
`
	if buf.String() != want {
		t.Errorf("array output = %q, want %q", buf.String(), want)
	}
}

func TestArrayWriter_NothingWrittenBeforeClose(t *testing.T) {
	var buf bytes.Buffer
	writer := NewArrayWriter(&buf)

	if err := writer.Write(TestRecord{ID: 1, Name: "buffered"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output written before Close: %q", buf.String())
	}
}

func TestArrayWriter_CloseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	writer := NewArrayWriter(&buf)

	if err := writer.Write(TestRecord{ID: 1, Name: "once"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	size := buf.Len()

	if err := writer.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if buf.Len() != size {
		t.Error("second Close wrote additional output")
	}

	if err := writer.Write(TestRecord{ID: 2, Name: "late"}); err == nil {
		t.Error("Write after Close should fail")
	}
}

func TestArrayFileWriter(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.json")

	writer, err := NewArrayFileWriter(path)
	if err != nil {
		t.Fatalf("NewArrayFileWriter failed: %v", err)
	}
	if err := writer.Write(TestRecord{ID: 1, Name: "one"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	var decoded []TestRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not a valid JSON array: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ID != 1 {
		t.Errorf("decoded = %+v, want the single written record", decoded)
	}
}

// TestFormatsAgree checks that the NDJSON lines and the JSON array contain
// semantically identical objects for the same records.
func TestFormatsAgree(t *testing.T) {
	records := []TestRecord{
		{ID: 1, Name: "Test One"},
		{ID: 2, Name: "Tëst & Two"},
	}

	var ndjsonBuf, arrayBuf bytes.Buffer
	ndjson := NewWriter(&ndjsonBuf)
	array := NewArrayWriter(&arrayBuf)
	for _, record := range records {
		if err := ndjson.Write(record); err != nil {
			t.Fatalf("ndjson Write failed: %v", err)
		}
		if err := array.Write(record); err != nil {
			t.Fatalf("array Write failed: %v", err)
		}
	}
	if err := ndjson.Close(); err != nil {
		t.Fatalf("ndjson Close failed: %v", err)
	}
	if err := array.Close(); err != nil {
		t.Fatalf("array Close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(ndjsonBuf.String()), "\n")
	if len(lines) != len(records) {
		t.Fatalf("ndjson produced %d lines, want %d", len(lines), len(records))
	}

	var fromLines []map[string]interface{}
	for _, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("ndjson line is not a standalone object: %v", err)
		}
		fromLines = append(fromLines, obj)
	}

	var fromArray []map[string]interface{}
	if err := json.Unmarshal(arrayBuf.Bytes(), &fromArray); err != nil {
		t.Fatalf("array output is not a valid JSON array: %v", err)
	}

	if !reflect.DeepEqual(fromLines, fromArray) {
		t.Errorf("formats disagree: ndjson %v, array %v", fromLines, fromArray)
	}
}
