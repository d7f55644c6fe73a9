package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ragenterrors "github.com/ragenthq/ragent/internal/errors"
	"github.com/ragenthq/ragent/internal/fda"
	"github.com/ragenthq/ragent/internal/output"
)

func TestRunSearch_LimitShortCircuits(t *testing.T) {
	// 9 records in pages of 3. A limit of 5 is reached inside the second
	// page, so the third page must never be fetched.
	mock := fda.NewMockClient(9)
	var out bytes.Buffer

	err := runSearch(context.Background(), mock, searchOptions{
		ProductCode: "LZG",
		Limit:       5,
		PageSize:    3,
		Format:      formatNDJSON,
		Stdout:      &out,
		Stderr:      &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("runSearch failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Errorf("emitted %d records, want 5", len(lines))
	}
	if mock.CallCount != 2 {
		t.Errorf("fetched %d pages, want 2", mock.CallCount)
	}
}

func TestRunSearch_UnlimitedDrainsEverything(t *testing.T) {
	mock := fda.NewMockClient(7)
	var out bytes.Buffer

	err := runSearch(context.Background(), mock, searchOptions{
		ProductCode: "LZG",
		PageSize:    3,
		Format:      formatNDJSON,
		Stdout:      &out,
		Stderr:      &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("runSearch failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 7 {
		t.Errorf("emitted %d records, want 7", len(lines))
	}
}

func TestRunSearch_JSONArrayOutput(t *testing.T) {
	mock := fda.NewMockClient(2)
	var out bytes.Buffer

	err := runSearch(context.Background(), mock, searchOptions{
		ProductCode: "LZG",
		PageSize:    100,
		Format:      formatJSON,
		Stdout:      &out,
		Stderr:      &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("runSearch failed: %v", err)
	}

	if !strings.HasPrefix(out.String(), "[\n  {") {
		t.Errorf("output should be a pretty-printed array, got %q", out.String())
	}

	var records []fda.DeviceRecord
	if err := json.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatalf("output is not a valid JSON array: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("decoded %d records, want 2", len(records))
	}
	if records[0].KNumber != "K000001" {
		t.Errorf("first record = %q, want K000001", records[0].KNumber)
	}
}

func TestRunSearch_ErrorLeavesStdoutEmpty(t *testing.T) {
	mock := &fda.MockClient{Err: &fda.StatusError{StatusCode: 404, Body: "no matches"}}
	var out bytes.Buffer

	err := runSearch(context.Background(), mock, searchOptions{
		ProductCode: "ZZZ",
		PageSize:    100,
		Format:      formatJSON,
		Stdout:      &out,
		Stderr:      &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected the client error to propagate")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error %q should mention the status code", err.Error())
	}
	if !errors.Is(err, ragenterrors.ErrAPIFailure) {
		t.Error("error should unwrap to ErrAPIFailure")
	}
	if out.Len() != 0 {
		t.Errorf("a failed json run must not write partial output, got %q", out.String())
	}
}

func TestRunSearch_WritesToFile(t *testing.T) {
	mock := fda.NewMockClient(3)
	path := filepath.Join(t.TempDir(), "devices.ndjson")
	var stderr bytes.Buffer

	err := runSearch(context.Background(), mock, searchOptions{
		ProductCode: "LZG",
		PageSize:    100,
		Format:      formatNDJSON,
		OutputFile:  path,
		Stdout:      &bytes.Buffer{},
		Stderr:      &stderr,
	})
	if err != nil {
		t.Fatalf("runSearch failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("file has %d lines, want 3", len(lines))
	}
	if !strings.Contains(stderr.String(), "Fetched 3 records") {
		t.Errorf("stderr %q should carry the final progress message", stderr.String())
	}
}

func TestNewOutputWriter(t *testing.T) {
	var buf bytes.Buffer

	writer, err := newOutputWriter(searchOptions{Format: formatNDJSON, Stdout: &buf})
	if err != nil {
		t.Fatalf("newOutputWriter failed: %v", err)
	}
	if _, ok := writer.(*output.Writer); !ok {
		t.Errorf("ndjson writer type = %T, want *output.Writer", writer)
	}

	writer, err = newOutputWriter(searchOptions{Format: formatJSON, Stdout: &buf})
	if err != nil {
		t.Fatalf("newOutputWriter failed: %v", err)
	}
	if _, ok := writer.(*output.ArrayWriter); !ok {
		t.Errorf("json writer type = %T, want *output.ArrayWriter", writer)
	}
}
