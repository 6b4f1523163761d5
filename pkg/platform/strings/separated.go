// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// TrimNonEmpty trims whitespace from each element and drops elements that
// end up empty. Order and repeated values are preserved.
//
// Example:
//
//	TrimNonEmpty([]string{"  Main St ", "", "Springfield", "  "})
//	// Returns: []string{"Main St", "Springfield"}
func TrimNonEmpty(values []string) []string {
	if len(values) == 0 {
		return values
	}

	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}

	return result
}

// CollapseSeparated splits s on sep, drops blank parts and rejoins the rest
// with sep followed by a single space. Repeated separators collapse into one
// and leading or trailing separators disappear.
//
// Example:
//
//	CollapseSeparated("Main St , , Springfield, , USA", ",")
//	// Returns: "Main St, Springfield, USA"
func CollapseSeparated(s, sep string) string {
	if sep == "" {
		return strings.TrimSpace(s)
	}
	parts := TrimNonEmpty(strings.Split(s, sep))
	return strings.Join(parts, sep+" ")
}
