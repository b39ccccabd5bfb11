package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  exe  ", "exe"},
		{".exe", "exe"},
		{"...exe", "exe"},
		{"EXE", "exe"},
		{"  .PDF  ", "pdf"},
		{"", ""},
		{"   ", ""},
		{"...", ""},
		{". exe", "exe"}, // dot/space prefix is stripped entirely
		{"  . . x", "x"},
		{" . . ", ""},
		{"e xe", "e xe"}, // inner whitespace survives, validation rejects it later
		{"tar.gz", "tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"  exe  ", "...ZIP", ".Pdf", "", "a_b_c", "  . . x", ". exe", " .. . ..tar"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_EquivalentInputsAgree(t *testing.T) {
	assert.Equal(t, "zip", Normalize("ZIP"))
	assert.Equal(t, "zip", Normalize(" .zip "))
	assert.Equal(t, "zip", Normalize("...ZIP"))
}
