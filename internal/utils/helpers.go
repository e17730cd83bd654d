package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how structured values are serialized before display.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the Format named by s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown value format %q (expected json or yaml)", s)
	}
}

// PrettyPrint serializes v as indented text in the given format.
func PrettyPrint(v interface{}, format Format) string {
	if format == FormatYAML {
		return marshalYAML(v)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v) // fallback
	}
	return string(b)
}

// Compact serializes v on a single line when the format allows it.
// YAML has no compact block form, so it falls back to PrettyPrint.
func Compact(v interface{}, format Format) string {
	if format == FormatYAML {
		return marshalYAML(v)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

func marshalYAML(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	// yaml.Marshal always terminates the document with a newline
	return strings.TrimSuffix(string(b), "\n")
}
