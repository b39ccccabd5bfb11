package extension

import "strings"

// Set is a membership set of canonical extension names.
type Set map[string]struct{}

// BlockedSet builds the union of blocked fixed names and all custom names.
// Member names are normalized on the way in.
func BlockedSet(fixedBlocked []string, custom []string) Set {
	s := make(Set, len(fixedBlocked)+len(custom))
	for _, n := range fixedBlocked {
		s[Normalize(n)] = struct{}{}
	}
	for _, n := range custom {
		s[Normalize(n)] = struct{}{}
	}
	return s
}

// Result describes the outcome of classifying a single file name.
type Result struct {
	FileName  string
	Extension string
	Blocked   bool
}

// Classify extracts the extension of fileName (the lowercased substring
// after the last dot, empty when the name has no dot) and tests it against
// the blocked set. It is a pure predicate over the given policy snapshot.
func Classify(fileName string, blocked Set) Result {
	ext := ""
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		ext = strings.ToLower(fileName[i+1:])
	}

	r := Result{FileName: fileName, Extension: ext}
	if ext == "" {
		return r
	}
	_, r.Blocked = blocked[ext]
	return r
}
