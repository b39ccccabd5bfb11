// Package extension holds the rules shared by client and server for file
// extension names: canonical normalization, validation of user input, the
// fixed catalog, and classification of file names against a block policy.
package extension

import "strings"

// Normalize converts raw user input into canonical form: surrounding
// whitespace is trimmed, leading dots are removed, and the result is
// lowercased. Trimming and dot-stripping repeat until stable, so a prefix
// mixing dots and whitespace (". . x") is removed entirely and the output
// never starts with either. Normalize is total over any string and
// idempotent.
//
//	"  .PDF  " -> "pdf"
//	"...exe"   -> "exe"
//	" . .exe"  -> "exe"
func Normalize(input string) string {
	s := strings.TrimSpace(input)
	for {
		t := strings.TrimSpace(strings.TrimLeft(s, "."))
		if t == s {
			break
		}
		s = t
	}
	return strings.ToLower(s)
}
