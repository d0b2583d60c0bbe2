// Package report prints option values once the menu has exited.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/settings-menu/internal/format/table"
	"github.com/atomicstack/settings-menu/internal/menu"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatNone Format = "none"
)

// ParseFormat accepts a format name in any case. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON, FormatNone:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Write encodes values to w in the given format.
func Write(w io.Writer, values []menu.OptionValue, format Format) error {
	switch format {
	case FormatNone:
		return nil
	case FormatText, "":
		rows := make([][]string, 0, len(values))
		for _, v := range values {
			rows = append(rows, []string{v.Path, v.Value})
		}
		return table.Write(w, rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(values); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		if values == nil {
			values = []menu.OptionValue{}
		}
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("unknown output format %q", string(format))
	}
}
