package exporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

func init() {
	Register(&CSVFormat{})
	Register(&TSVFormat{})
}

// CSVFormat handles CSV files.
type CSVFormat struct{}

func (f *CSVFormat) Name() string         { return "csv" }
func (f *CSVFormat) Extensions() []string { return []string{".csv"} }
func (f *CSVFormat) Writer() Writer       { return &DelimitedWriter{delimiter: ','} }

// TSVFormat handles TSV files.
type TSVFormat struct{}

func (f *TSVFormat) Name() string         { return "tsv" }
func (f *TSVFormat) Extensions() []string { return []string{".tsv"} }
func (f *TSVFormat) Writer() Writer       { return &DelimitedWriter{delimiter: '\t'} }

// DelimitedWriter writes CSV/TSV files with the schema's column order.
type DelimitedWriter struct {
	path      string
	file      *os.File
	writer    *csv.Writer
	columns   []string
	delimiter rune
	mu        sync.Mutex
}

// Init creates the file and writes the header row.
func (w *DelimitedWriter) Init(path string, schema *Schema) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	w.path = path
	w.file = file
	w.writer = csv.NewWriter(file)
	w.writer.Comma = w.delimiter
	w.columns = schema.Columns()

	if err := w.writer.Write(w.columns); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// Write writes a single record as one row.
func (w *DelimitedWriter) Write(record Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	row := make([]string, len(w.columns))
	for i, col := range w.columns {
		if val, ok := record[col]; ok {
			row[i] = FormatValue(val)
		}
	}

	if err := w.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying file.
func (w *DelimitedWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.writer != nil {
		w.writer.Flush()
		return w.writer.Error()
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (w *DelimitedWriter) Close() error {
	if err := w.Flush(); err != nil {
		if w.file != nil {
			_ = w.file.Close()
		}
		return err
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

// Path returns the file path.
func (w *DelimitedWriter) Path() string {
	return w.path
}
