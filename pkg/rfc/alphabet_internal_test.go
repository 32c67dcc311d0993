package rfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabetIndex(t *testing.T) {
	t.Parallel()

	assert.Len(t, alphabetIndexes, 39)

	tests := map[rune]int{
		'0': 0,
		'9': 9,
		'A': 10,
		'N': 23,
		'&': 24,
		'O': 25,
		'Z': 36,
		' ': 37,
		'Ñ': 38,
	}
	for r, want := range tests {
		assert.Equal(t, want, alphabetIndex(r), "index of %q", r)
	}

	for _, r := range []rune{'a', '-', 'ñ', '@', 'É'} {
		assert.Equal(t, -1, alphabetIndex(r), "index of %q", r)
	}
}

func TestComputeCheckSymbol_UnknownRunes(t *testing.T) {
	t.Parallel()

	// lowercase runes count as -1 instead of being skipped
	assert.NotEqual(t, ComputeCheckSymbol("VACE611210MQ"), ComputeCheckSymbol("VACe611210MQ"))
}
