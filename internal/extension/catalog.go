package extension

// fixedCatalog is the predefined, non-extensible set of well-known
// extensions whose block state is user-togglable. Absence of a stored
// override for a catalog name means "not blocked".
var fixedCatalog = []string{"bat", "cmd", "com", "cpl", "exe", "scr", "js"}

// Catalog returns the fixed extension catalog in display order.
// The returned slice is a copy; callers may modify it freely.
func Catalog() []string {
	out := make([]string, len(fixedCatalog))
	copy(out, fixedCatalog)
	return out
}

// InCatalog reports whether name (canonical form) is a catalog member.
func InCatalog(name string) bool {
	for _, c := range fixedCatalog {
		if c == name {
			return true
		}
	}
	return false
}
