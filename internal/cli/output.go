package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"rgbctl/internal/picker"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// ColorReport is what the headless commands print for one color.
type ColorReport struct {
	picker.Projection `json:",inline" yaml:",inline"`
	Theme             picker.Theme `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// NewColorReport builds a report for p. An empty theme is omitted.
func NewColorReport(p picker.Projection, theme picker.Theme) ColorReport {
	return ColorReport{Projection: p, Theme: theme}
}

// Printer renders reports in one output format.
type Printer struct {
	out    io.Writer
	format OutputFormat
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, format OutputFormat) *Printer {
	return &Printer{out: out, format: format}
}

// Print writes r in the configured format.
func (p *Printer) Print(r ColorReport) error {
	switch p.format {
	case OutputFormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case OutputFormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = p.out.Write(data)
		return err
	case OutputFormatTable:
		p.printTable(r)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

// printTable formats the report as property/value pairs.
func (p *Printer) printTable(r ColorReport) {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("PROPERTY"),
		text.FgHiCyan.Sprint("VALUE"),
	})

	rows := []struct {
		key   string
		value interface{}
	}{
		{"swatch", swatch(r.Projection)},
		{"hex", r.DisplayHex},
		{"rgb", r.CSS},
		{"decimal", r.Decimal},
		{"luminance", fmt.Sprintf("%.4f", r.Luminance)},
		{"background", formatBrightness(r.Contrast.Light)},
		{"text", r.Contrast.Text},
		{"border", r.Contrast.Border},
	}
	if r.Theme != "" {
		rows = append(rows, struct {
			key   string
			value interface{}
		}{"theme", text.FgCyan.Sprint(string(r.Theme))})
	}

	for _, row := range rows {
		t.AppendRow(table.Row{text.FgYellow.Sprint(row.key), row.value})
	}
	t.Render()
}

func swatch(p picker.Projection) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(p.DisplayHex)).
		Foreground(lipgloss.Color(p.Contrast.Text)).
		Render(" " + p.DisplayHex + " ")
}

func formatBrightness(light bool) string {
	if light {
		return text.FgHiWhite.Sprint("light")
	}
	return text.FgHiBlack.Sprint("dark")
}
