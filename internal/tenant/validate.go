package tenant

import "regexp"

// Tenant ids are lowercase tokens, 2-32 chars of [a-z0-9-_]. Resolution
// itself passes explicit header/query values through verbatim; callers
// that need a hard guarantee validate separately with IsValidID.
var idPattern = regexp.MustCompile(`^[a-z0-9-_]{2,32}$`)

// IsValidID reports whether id is a well-formed tenant identifier.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}
