package report

import (
	"fmt"
	"strings"
)

// Format selects how results are rendered
type Format int

const (
	FormatText Format = iota
	FormatCompact
	FormatDetailed
	FormatJSON
	FormatYAML
)

var formatNames = []string{
	FormatText:     "text",
	FormatCompact:  "compact",
	FormatDetailed: "detailed",
	FormatJSON:     "json",
	FormatYAML:     "yaml",
}

// String returns the config name of the format
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a config name to a Format. Names are case-insensitive.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return FormatText, fmt.Errorf("unknown output format %q (valid: %s)", name, strings.Join(formatNames, ", "))
}
