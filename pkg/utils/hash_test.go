package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", HashString("abc"))
}

func TestNormalizePhone(t *testing.T) {
	tests := map[string]string{
		"(778) 653-4724":  "17786534724",
		"+1(778)653-4724": "17786534724",
		"778.653.4724":    "17786534724",
		"1 778 653 4724":  "17786534724",
		"":                "",
		// Non-NANP numbers get the North American prefix.
		"+44 20 7946 0958": "1442079460958",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePhone(in), "phone %q", in)
	}
}

func TestHashPhoneIgnoresFormatting(t *testing.T) {
	assert.Equal(t, HashPhone("(778) 653-4724"), HashPhone("+1 778-653-4724"))
	assert.NotEqual(t, HashPhone("(778) 653-4724"), HashPhone("(778) 653-4725"))
}
