package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"sigs.k8s.io/yaml"

	"github.com/Jumpaku/go-driveops"
)

const (
	outputJSON  = "json"
	outputYAML  = "yaml"
	outputTable = "table"
)

func validateOutput(format string) error {
	switch format {
	case outputJSON, outputYAML, outputTable:
		return nil
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

// output is what a command prints. Value is encoded as JSON or YAML; Rows and Columns make up the table.
type output struct {
	Value   any
	Rows    []*driveops.Record
	Columns []string
	Caption string
	// Cell renders a table cell. Defaults to cell.
	Cell func(r *driveops.Record, column string) string
}

func (o output) write(w io.Writer, format string) error {
	var data []byte
	var err error
	switch format {
	case outputJSON:
		data, err = json.MarshalIndent(o.Value, "", "  ")
		data = append(data, '\n')
	case outputYAML:
		data, err = yaml.Marshal(o.Value)
	case outputTable:
		data = []byte(o.table())
	default:
		err = fmt.Errorf("unknown output format: %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding output as %q failed: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

func (o output) table() string {
	t := table.NewWriter()
	header := make(table.Row, len(o.Columns))
	for i, c := range o.Columns {
		header[i] = c
	}
	t.AppendHeader(header)
	render := o.Cell
	if render == nil {
		render = cell
	}
	for _, r := range o.Rows {
		row := make(table.Row, len(o.Columns))
		for i, c := range o.Columns {
			row[i] = render(r, c)
		}
		t.AppendRow(row)
	}
	if o.Caption != "" {
		t.SetCaption("%s", o.Caption)
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	return t.Render() + "\n"
}

// cell renders the value under a dotted column name.
func cell(r *driveops.Record, column string) string {
	v, ok := driveops.RecordGet(r, strings.Split(column, ".")...)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.([]string); ok {
		return strings.Join(s, ",")
	}
	return fmt.Sprint(v)
}
