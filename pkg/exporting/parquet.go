package exporting

import (
	"fmt"
	"os"
	"sync"

	"github.com/parquet-go/parquet-go"
)

const parquetBatchSize = 1000

func init() {
	Register(&ParquetFormat{})
}

// ParquetFormat handles Parquet files.
type ParquetFormat struct{}

func (f *ParquetFormat) Name() string         { return "parquet" }
func (f *ParquetFormat) Extensions() []string { return []string{".parquet"} }
func (f *ParquetFormat) Writer() Writer       { return &ParquetWriter{} }

// ParquetWriter writes Parquet files using the Row API. Column types are
// inferred from the first buffered batch; every column is optional so missing
// cells become nulls.
type ParquetWriter struct {
	path       string
	file       *os.File
	writer     *parquet.Writer
	schema     *parquet.Schema
	columns    []string
	schemaInit bool
	buffer     []Record
	mu         sync.Mutex
}

func (w *ParquetWriter) Init(path string, schema *Schema) error {
	w.path = path
	w.columns = schema.Columns()
	w.buffer = make([]Record, 0, parquetBatchSize)
	return nil
}

func (w *ParquetWriter) initSchema() error {
	group := make(parquet.Group, len(w.columns))
	for _, name := range w.columns {
		group[name] = valueToParquetNode(firstValue(w.buffer, name))
	}
	w.schema = parquet.NewSchema("summary", group)

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	w.file = file
	w.writer = parquet.NewWriter(file, w.schema,
		parquet.Compression(&parquet.Snappy),
	)
	w.schemaInit = true
	return nil
}

// firstValue returns the first non-nil value a column takes in the buffered
// records, nil when the column is empty throughout.
func firstValue(records []Record, column string) interface{} {
	for _, r := range records {
		if v, ok := r[column]; ok && v != nil {
			return v
		}
	}
	return nil
}

func valueToParquetNode(val interface{}) parquet.Node {
	switch val.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return parquet.Optional(parquet.Int(64))
	case float32, float64:
		return parquet.Optional(parquet.Leaf(parquet.DoubleType))
	case bool:
		return parquet.Optional(parquet.Leaf(parquet.BooleanType))
	case nil:
		// Column never populated; double keeps numeric summaries readable.
		return parquet.Optional(parquet.Leaf(parquet.DoubleType))
	default:
		return parquet.Optional(parquet.String())
	}
}

// recordToRow maps a record onto the schema's leaf order. parquet.Group sorts
// fields by name, so values are placed by the schema's field positions rather
// than the caller's column order.
func (w *ParquetWriter) recordToRow(record Record) parquet.Row {
	fields := w.schema.Fields()
	row := make(parquet.Row, len(fields))
	for i, f := range fields {
		val, ok := record[f.Name()]
		if !ok || val == nil {
			row[i] = parquet.NullValue().Level(0, 0, i)
			continue
		}
		row[i] = goToParquetValue(val, i)
	}
	return row
}

func goToParquetValue(val interface{}, columnIndex int) parquet.Value {
	switch v := val.(type) {
	case bool:
		return parquet.BooleanValue(v).Level(0, 1, columnIndex)
	case int:
		return parquet.Int64Value(int64(v)).Level(0, 1, columnIndex)
	case int32:
		return parquet.Int64Value(int64(v)).Level(0, 1, columnIndex)
	case int64:
		return parquet.Int64Value(v).Level(0, 1, columnIndex)
	case uint64:
		return parquet.Int64Value(int64(v)).Level(0, 1, columnIndex)
	case float32:
		return parquet.DoubleValue(float64(v)).Level(0, 1, columnIndex)
	case float64:
		return parquet.DoubleValue(v).Level(0, 1, columnIndex)
	case string:
		return parquet.ByteArrayValue([]byte(v)).Level(0, 1, columnIndex)
	default:
		return parquet.ByteArrayValue([]byte(fmt.Sprintf("%v", v))).Level(0, 1, columnIndex)
	}
}

func (w *ParquetWriter) Write(record Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buffer = append(w.buffer, record)
	if len(w.buffer) >= parquetBatchSize {
		return w.flushBuffer()
	}
	return nil
}

func (w *ParquetWriter) flushBuffer() error {
	if len(w.buffer) == 0 {
		return nil
	}
	if !w.schemaInit {
		if err := w.initSchema(); err != nil {
			return err
		}
	}

	for _, record := range w.buffer {
		row := w.recordToRow(record)
		if _, err := w.writer.WriteRows([]parquet.Row{row}); err != nil {
			return fmt.Errorf("failed to write parquet row: %w", err)
		}
	}
	w.buffer = w.buffer[:0]
	return nil
}

func (w *ParquetWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Zero rows still produce a valid file carrying the schema.
	if !w.schemaInit {
		if err := w.initSchema(); err != nil {
			return err
		}
	}
	if err := w.flushBuffer(); err != nil {
		return err
	}
	if w.writer != nil {
		return w.writer.Flush()
	}
	return nil
}

func (w *ParquetWriter) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if w.writer != nil {
		if err := w.writer.Close(); err != nil {
			return err
		}
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

func (w *ParquetWriter) Path() string {
	return w.path
}
