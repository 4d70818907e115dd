package fdl

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/richard-senior/footballlab/pkg/util"
)

// column is one persisted field of an entity. index is the reflect path to the
// field, which is longer than one for fields promoted from an embedded struct.
type column struct {
	name    string
	dbType  string
	primary bool
	indexed bool
	fk      string
	index   []int
}

var columnCache sync.Map

// columnsOf walks the exported fields of t in declaration order. Embedded structs
// without a column tag of their own are flattened into the parent.
func columnsOf(t reflect.Type) []column {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := columnCache.Load(t); ok {
		return cached.([]column)
	}
	var cols []column
	var walk func(t reflect.Type, prefix []int)
	walk = func(t reflect.Type, prefix []int) {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			path := append(append([]int{}, prefix...), i)
			if field.Anonymous && field.Type.Kind() == reflect.Struct && field.Tag.Get("column") == "" {
				walk(field.Type, path)
				continue
			}
			dbType := field.Tag.Get("dbtype")
			if dbType == "" || field.Tag.Get("persist") == "false" {
				continue
			}
			name := field.Tag.Get("column")
			if name == "" {
				name = strings.ToLower(field.Name)
			}
			cols = append(cols, column{
				name:    name,
				dbType:  dbType,
				primary: field.Tag.Get("primary") == "true",
				indexed: field.Tag.Get("index") != "",
				fk:      field.Tag.Get("fk"),
				index:   path,
			})
		}
	}
	walk(t, nil)
	columnCache.Store(t, cols)
	return cols
}

func structValue(obj any) reflect.Value {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v
}

// Columns returns the column names of obj, which may be a struct or a pointer to one
func Columns(obj any) []string {
	cols := columnsOf(reflect.TypeOf(obj))
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

// Values renders every column of obj as text, in Columns order
func Values(obj any) []string {
	v := structValue(obj)
	cols := columnsOf(v.Type())
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = formatValue(v.FieldByIndex(c.index))
	}
	return out
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}

func parseValue(v reflect.Value, text string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(text)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if text == "" {
			v.SetInt(0)
			return nil
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if text == "" {
			v.SetUint(0)
			return nil
		}
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		if text == "" {
			v.SetFloat(0)
			return nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported column kind %s", v.Kind())
	}
	return nil
}

// EncodeCSV renders rows as CSV with a header line taken from the column tags
func EncodeCSV[T any](rows []T) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Columns(new(T))); err != nil {
		return nil, err
	}
	for i := range rows {
		if err := w.Write(Values(&rows[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTable replaces the file at path with rows encoded as CSV
func WriteTable[T any](path string, rows []T) error {
	data, err := EncodeCSV(rows)
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// DecodeCSV parses CSV written by EncodeCSV. Columns are matched by header name,
// so their order in the file does not matter, but every column of T must be present.
func DecodeCSV[T any](r io.Reader) ([]T, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	cols := columnsOf(reflect.TypeOf(new(T)))
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[h] = i
	}
	positions := make([]int, len(cols))
	for i, c := range cols {
		p, ok := byName[c.name]
		if !ok {
			return nil, fmt.Errorf("csv header is missing column %s", c.name)
		}
		positions[i] = p
	}

	var rows []T
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}
		var row T
		v := reflect.ValueOf(&row).Elem()
		for i, c := range cols {
			if err := parseValue(v.FieldByIndex(c.index), record[positions[i]]); err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, c.name, err)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadTable loads a CSV file written by WriteTable
func ReadTable[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	rows, err := DecodeCSV[T](f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}
