package util

import "strings"

// ParseCommaSeparatedCodes splits the first value of a query parameter list
// into trimmed, non-empty form codes.
func ParseCommaSeparatedCodes(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	raw := values[0]
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
