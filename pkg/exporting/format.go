// Package exporting writes summary tables to the supported output formats.
//
// Formats register themselves at init time and are selected by name or file
// extension. Unlike free-form record dumps, every writer here is initialized
// with an ordered Schema so the summary table keeps its fixed column order in
// every format.
package exporting

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Record is one summary row keyed by column name. Columns absent from a
// record render as empty/null cells.
type Record = map[string]interface{}

// Schema fixes the column order of a summary table.
type Schema struct {
	columns []string
}

// NewSchema builds a schema from an ordered column list.
func NewSchema(columns []string) *Schema {
	return &Schema{columns: append([]string(nil), columns...)}
}

// Columns returns the ordered column names.
func (s *Schema) Columns() []string { return s.columns }

// Format describes one supported output format.
type Format interface {
	Name() string
	Extensions() []string
	Writer() Writer
}

// Writer writes schema-ordered records to a file.
type Writer interface {
	Init(path string, schema *Schema) error
	Write(record Record) error
	Flush() error
	Close() error
	Path() string
}

var (
	registry    = make(map[string]Format)
	extRegistry = make(map[string]Format)
)

// Register adds a format to the registry.
func Register(f Format) {
	registry[strings.ToLower(f.Name())] = f
	for _, ext := range f.Extensions() {
		extRegistry[strings.ToLower(ext)] = f
	}
}

// Get returns a format by name.
func Get(name string) (Format, bool) {
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

// GetByPath returns a format based on the file's extension.
func GetByPath(path string) (Format, bool) {
	f, ok := extRegistry[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// SaveRecords writes all records to path in the format matching its
// extension. The schema header is written even when records is empty. Any
// failure here is fatal to the caller: a partially written summary table is
// worse than none.
func SaveRecords(path string, schema *Schema, records []Record) error {
	f, ok := GetByPath(path)
	if !ok {
		return fmt.Errorf("unsupported output format for file: %s", path)
	}

	writer := f.Writer()
	if err := writer.Init(path, schema); err != nil {
		return fmt.Errorf("failed to initialize writer: %w", err)
	}

	for i, r := range records {
		if err := writer.Write(r); err != nil {
			writer.Close()
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := writer.Flush(); err != nil {
		writer.Close()
		return fmt.Errorf("failed to flush: %w", err)
	}
	return writer.Close()
}
