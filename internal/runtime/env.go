package runtime

import (
	"slices"
	"strings"
)

// Merges override env vars on top of a base env slice.
//
// Keys keep the position of their first appearance in base, followed by new
// keys in override order. Later values win. Entries without "=" are dropped.
func MergeEnv(base, overrides []string) []string {
	index := make(map[string]int, len(base)+len(overrides))
	result := make([]string, 0, len(base)+len(overrides))

	for _, entry := range slices.Concat(base, overrides) {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if i, seen := index[k]; seen {
			result[i] = entry
			continue
		}
		index[k] = len(result)
		result = append(result, entry)
	}

	return result
}

// Returns the value of key in env and whether it was present.
//
// The last entry for a key wins, matching how the OS resolves duplicates.
func LookupEnv(env []string, key string) (string, bool) {
	for i := len(env) - 1; i >= 0; i-- {
		if k, v, ok := strings.Cut(env[i], "="); ok && k == key {
			return v, true
		}
	}
	return "", false
}
