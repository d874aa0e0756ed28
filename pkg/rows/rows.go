// Package rows decodes tabular input into rows of cell strings for the
// table engine. CSV, YAML and JSON (parsed as YAML) are supported.
package rows

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/turboterm/pkg/errors"
)

// Format names an input encoding.
type Format string

const (
	CSV  Format = "csv"
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case CSV, YAML, JSON:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown row format %q (want csv, yaml or json)", name).
			WithDetail("format", name)
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to CSV.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return CSV
	}
	return f
}

// Decode reads every row from r.
func Decode(r io.Reader, format Format) ([][]string, error) {
	switch format {
	case CSV:
		return decodeCSV(r)
	case YAML, JSON:
		return decodeYAML(r)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown row format %q", format)
	}
}

func decodeCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRowDecode, "invalid CSV input")
	}
	return records, nil
}

func decodeYAML(r io.Reader) ([][]string, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrRowDecode, "invalid YAML/JSON input")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, errors.Newf(errors.ErrRowDecode, "line %d: expected a list of rows", root.Line)
	}

	out := make([][]string, 0, len(root.Content))
	for _, rowNode := range root.Content {
		if rowNode.Kind != yaml.SequenceNode {
			return nil, errors.Newf(errors.ErrRowDecode, "line %d: row must be a list of cells", rowNode.Line)
		}
		row := make([]string, 0, len(rowNode.Content))
		for _, cell := range rowNode.Content {
			value, err := scalar(cell)
			if err != nil {
				return nil, err
			}
			row = append(row, value)
		}
		out = append(out, row)
	}
	return out, nil
}

func scalar(n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "", nil
		}
		return n.Value, nil
	case yaml.AliasNode:
		return scalar(n.Alias)
	default:
		return "", errors.New(errors.ErrRowDecode, fmt.Sprintf("line %d: cell must be a scalar", n.Line))
	}
}
