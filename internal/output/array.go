package output

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ArrayWriter buffers records and writes them as a single pretty-printed
// JSON array (two-space indent) on Close. Unlike Writer it holds every
// record in memory, which is acceptable for the bounded result sets this
// tool collects.
type ArrayWriter struct {
	mu        sync.Mutex
	output    io.Writer
	records   []interface{}
	closed    bool
	closeFunc func() error
}

// NewArrayWriter creates a buffered JSON array writer over the given output.
func NewArrayWriter(w io.Writer) *ArrayWriter {
	return &ArrayWriter{
		output:  w,
		records: []interface{}{},
	}
}

// NewArrayFileWriter creates a buffered JSON array writer backed by a file.
// The caller must call Close() when done; nothing reaches the file before
// then.
func NewArrayFileWriter(filename string) (*ArrayWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &ArrayWriter{
		output:    file,
		records:   []interface{}{},
		closeFunc: file.Close,
	}, nil
}

// Write buffers a single record.
func (w *ArrayWriter) Write(record interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("writer is closed")
	}

	w.records = append(w.records, record)
	return nil
}

// Count returns the number of records buffered.
func (w *ArrayWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.records)
}

// Close encodes the buffered records as one indented JSON array and closes
// the underlying file, if any. Close is idempotent; only the first call
// writes.
func (w *ArrayWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	encoder := newEncoder(w.output)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(w.records)

	if w.closeFunc != nil {
		if cerr := w.closeFunc(); err == nil {
			err = cerr
		}
	}

	if err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}
