package exporting

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

const defaultBufferSize = 64 * 1024

func init() {
	Register(&JSONLFormat{})
}

// JSONLFormat handles JSON Lines output, one summary row per line.
type JSONLFormat struct{}

func (f *JSONLFormat) Name() string         { return "jsonl" }
func (f *JSONLFormat) Extensions() []string { return []string{".jsonl"} }
func (f *JSONLFormat) Writer() Writer       { return &JSONLWriter{} }

// JSONLWriter writes JSONL files. Columns missing from a record are emitted
// as explicit nulls so every line carries the full schema.
type JSONLWriter struct {
	path    string
	file    *os.File
	writer  *bufio.Writer
	columns []string
	mu      sync.Mutex
}

func (w *JSONLWriter) Init(path string, schema *Schema) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	w.path = path
	w.file = file
	w.writer = bufio.NewWriterSize(file, defaultBufferSize)
	w.columns = schema.Columns()
	return nil
}

func (w *JSONLWriter) Write(record Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	line := make(Record, len(w.columns))
	for _, col := range w.columns {
		if val, ok := record[col]; ok {
			line[col] = val
		} else {
			line[col] = nil
		}
	}

	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if _, err := w.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}
	return nil
}

func (w *JSONLWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.writer != nil {
		return w.writer.Flush()
	}
	return nil
}

func (w *JSONLWriter) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

func (w *JSONLWriter) Path() string {
	return w.path
}
