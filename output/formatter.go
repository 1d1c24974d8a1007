// Package output renders command results as tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// Format types for output.
type Format string

const (
	// FormatTable renders a table.
	FormatTable Format = "table"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// maxCellWidth caps nested values rendered inside table cells.
const maxCellWidth = 48

// Formatter writes data in one format.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for format, defaulting to table.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// ParseFormat converts s to a Format. The empty string is allowed and
// means "detect".
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml", s)
	}
}

// DetectFormat returns explicit when set, table on a terminal and JSON
// otherwise.
func DetectFormat(explicit Format) Format {
	if explicit != "" {
		return explicit
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return FormatTable
	}
	return FormatJSON
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format implements the Formatter interface for YAML output.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(Plain(data),
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// Data is pre-shaped table content.
type Data struct {
	Headers []string
	Rows    [][]string
}

// TableFormatter outputs table format.
type TableFormatter struct{}

// Format renders records, mappings and Data as tables. Scalars are printed
// as a single line; anything else falls back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Data:
		return renderTable(w, v)
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	case []any:
		if d, ok := recordsToData(v); ok {
			return renderTable(w, d)
		}
	case map[string]any:
		return renderTable(w, mapToData(v))
	}

	jsonFormatter := &JSONFormatter{Indent: "  "}
	return jsonFormatter.Format(w, data)
}

func renderTable(w io.Writer, data Data) error {
	table := tablewriter.NewTable(w)

	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}

	for _, row := range data.Rows {
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := table.Append(rowData...); err != nil {
			return err
		}
	}

	return table.Render()
}

// recordsToData turns a list of JSON objects into rows. Columns are the
// union of keys with "id" first and the rest sorted.
func recordsToData(records []any) (Data, bool) {
	if len(records) == 0 {
		return Data{Headers: []string{"result"}, Rows: [][]string{{"(none)"}}}, true
	}

	seen := map[string]bool{}
	var keys []string
	for _, r := range records {
		m, ok := r.(map[string]any)
		if !ok {
			return Data{}, false
		}
		for k := range m {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sortKeys(keys)

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		m := r.(map[string]any)
		row := make([]string, len(keys))
		for i, k := range keys {
			if v, ok := m[k]; ok {
				row[i] = Cell(v)
			}
		}
		rows = append(rows, row)
	}
	return Data{Headers: keys, Rows: rows}, true
}

func mapToData(m map[string]any) Data {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, Cell(m[k])})
	}
	return Data{Headers: []string{"key", "value"}, Rows: rows}
}

func sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == "id" || keys[j] == "id" {
			return keys[i] == "id"
		}
		return keys[i] < keys[j]
	})
}

// Cell renders one value for a table cell. Nested values are compact JSON,
// truncated.
func Cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool, float64, int, int64:
		return fmt.Sprint(t)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	s := string(b)
	if len(s) > maxCellWidth {
		s = s[:maxCellWidth-3] + "..."
	}
	return s
}

// Plain converts json.Number values to int64 or float64 so encoders that
// do not know json.Number print real numbers.
func Plain(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Plain(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Plain(e)
		}
		return out
	default:
		return v
	}
}
