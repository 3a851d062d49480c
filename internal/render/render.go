// Package render formats roll results and errors for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/roll/internal/dice"
)

// Format names an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates name and returns the matching Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: must be one of [text, json, yaml]", name)
	}
}

// report is the machine-readable shape of a roll.
type report struct {
	Expression string `json:"expression" yaml:"expression"`
	Rolls      []int  `json:"rolls" yaml:"rolls,flow"`
	Modifier   int    `json:"modifier" yaml:"modifier"`
	Total      int    `json:"total" yaml:"total"`
}

// Write renders result to w in the given format.
//
// The text format is two lines:
//
//	Rolls: [4, 5]
//	Total: 12
func Write(w io.Writer, format Format, result dice.RollResult) error {
	switch format {
	case Text:
		_, err := fmt.Fprintf(w, "Rolls: %s\nTotal: %d\n", List(result.Dice), result.Total())
		return err
	case JSON:
		enc := json.NewEncoder(w)
		return enc.Encode(newReport(result))
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(newReport(result)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteError renders err as a single "Error: <message>" line.
func WriteError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "Error: %s\n", err)
	return werr
}

// List renders values as a bracketed, comma-separated list, e.g. "[4, 5]".
func List(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func newReport(result dice.RollResult) report {
	rolls := result.Dice
	if rolls == nil {
		rolls = []int{}
	}
	return report{
		Expression: result.Expression,
		Rolls:      rolls,
		Modifier:   result.Modifier,
		Total:      result.Total(),
	}
}
