package utils

// IsOwner reports whether the authenticated principal owns a
// resource belonging to owner. The comparison is case-sensitive and
// an empty principal never owns anything.
func IsOwner(principal, owner string) bool {
	return principal != "" && principal == owner
}
