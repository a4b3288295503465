package cache

import "strings"

// GlobalKeyPrefix namespaces every key this service writes.
const GlobalKeyPrefix = "trivia"

// GenerateCacheKey builds "trivia:<resource>:<kind>:<identifier>". Extra params are joined by "_"
// and appended as one more segment.
func GenerateCacheKey(resource, kind, identifier string, params ...string) string {
	parts := []string{GlobalKeyPrefix, resource, kind, identifier}
	if len(params) > 0 {
		parts = append(parts, strings.Join(params, "_"))
	}
	return strings.Join(parts, ":")
}

// CategoryMapKey holds the JSON id -> type map of every category.
func CategoryMapKey() string {
	return GenerateCacheKey("category", "map", "all")
}
