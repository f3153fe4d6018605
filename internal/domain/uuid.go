package domain

import "regexp"

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// IsValidUUID reports whether id is a lowercase 8-4-4-4-12 hex identifier.
func IsValidUUID(id string) bool {
	return uuidPattern.MatchString(id)
}
