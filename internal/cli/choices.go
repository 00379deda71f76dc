package cli

import "strings"

// choices renders an enumeration for flag help, e.g. "Goalkeeper, Defender"
func choices[T ~string](values []T, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, sep)
}
