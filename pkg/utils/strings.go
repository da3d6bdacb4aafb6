package utils

import "strings"

// SplitList splits a separated list such as an env var value, trimming each item and dropping empty ones.
func SplitList(raw, sep string) []string {
	var result []string

	for _, s := range strings.Split(raw, sep) {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}

	return result
}
