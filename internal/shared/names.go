// Package shared provides small helpers used across the schema-inherit
// packages.
package shared

import "strings"

// NormalizeClassName trims whitespace and leading namespace separators so
// that `\App\Cat` and `App\Cat` name the same class.
func NormalizeClassName(value string) string {
	return strings.TrimLeft(strings.TrimSpace(value), `\`)
}

// ShortClassName returns the last segment of a namespaced class name.
func ShortClassName(value string) string {
	name := NormalizeClassName(value)
	if idx := strings.LastIndex(name, `\`); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
