package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	blocked := BlockedSet([]string{"exe", "BAT"}, []string{"zip"})

	tests := []struct {
		fileName string
		wantExt  string
		blocked  bool
	}{
		{"setup.exe", "exe", true},
		{"Setup.EXE", "exe", true},
		{"run.bat", "bat", true},
		{"archive.zip", "zip", true},
		{"photo.jpg", "jpg", false},
		{"archive.tar.gz", "gz", false},
		{"README", "", false},
		{"trailingdot.", "", false},
		{".bashrc", "bashrc", false},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			r := Classify(tt.fileName, blocked)
			assert.Equal(t, tt.fileName, r.FileName)
			assert.Equal(t, tt.wantExt, r.Extension)
			assert.Equal(t, tt.blocked, r.Blocked)
		})
	}
}

func TestClassify_EmptySet(t *testing.T) {
	r := Classify("a.exe", nil)
	assert.False(t, r.Blocked)
}

func TestBlockedSet_NormalizesMembers(t *testing.T) {
	s := BlockedSet([]string{" .EXE "}, []string{"..ZIP"})
	_, okExe := s["exe"]
	_, okZip := s["zip"]
	assert.True(t, okExe)
	assert.True(t, okZip)
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	assert.Equal(t, []string{"bat", "cmd", "com", "cpl", "exe", "scr", "js"}, c)

	// returned slice is a copy
	c[0] = "mutated"
	assert.Equal(t, "bat", Catalog()[0])

	assert.True(t, InCatalog("exe"))
	assert.False(t, InCatalog("zip"))
}
