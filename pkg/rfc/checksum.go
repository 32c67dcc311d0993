package rfc

import "strconv"

// alphabet orders every symbol that may appear in an RFC. A symbol's
// position is its numeric contribution to the check digit.
const alphabet = "0123456789ABCDEFGHIJKLMN&OPQRSTUVWXYZ Ñ"

// moralOffset stands in for the missing fourth letter of a legal-entity RFC.
const moralOffset = 481

var alphabetIndexes = func() map[rune]int {
	m := make(map[rune]int, len(alphabet))
	i := 0
	for _, r := range alphabet {
		m[r] = i
		i++
	}
	return m
}()

// alphabetIndex returns the position of r in the alphabet, or -1.
func alphabetIndex(r rune) int {
	if i, ok := alphabetIndexes[r]; ok {
		return i
	}
	return -1
}

// CheckSymbol is the final character of an RFC: a decimal digit or the
// letter A, which stands for a check value of ten.
type CheckSymbol struct {
	digit   int
	letterA bool
}

// LetterA is the check symbol used when the checksum yields ten.
var LetterA = CheckSymbol{letterA: true}

// Digit returns the check symbol for d. Only 0-9 can be typed in an RFC;
// other values never compare equal to a parsed symbol.
func Digit(d int) CheckSymbol {
	return CheckSymbol{digit: d}
}

// ParseCheckSymbol converts a single typed character into a CheckSymbol.
func ParseCheckSymbol(r rune) (CheckSymbol, bool) {
	switch {
	case r == 'A':
		return LetterA, true
	case r >= '0' && r <= '9':
		return CheckSymbol{digit: int(r - '0')}, true
	default:
		return CheckSymbol{}, false
	}
}

// IsLetterA reports whether the symbol is the letter A.
func (c CheckSymbol) IsLetterA() bool { return c.letterA }

// Value returns the numeric part of the symbol. The letter A has no digit
// and reports 0, so use IsLetterA or == to tell it apart from digit zero.
func (c CheckSymbol) Value() int {
	if c.letterA {
		return 0
	}
	return c.digit
}

func (c CheckSymbol) String() string {
	if c.letterA {
		return "A"
	}
	return strconv.Itoa(c.digit)
}

// ComputeCheckSymbol calculates the expected check symbol for an RFC
// without its check digit (letters, date and homoclave, 11 or 12 runes).
func ComputeCheckSymbol(base string) CheckSymbol {
	runes := []rune(base)
	n := len(runes)

	sum := 0
	if n != 12 {
		sum = moralOffset
	}
	for i, r := range runes {
		sum += alphabetIndex(r) * (n + 1 - i)
	}

	expected := 11 - sum%11
	switch expected {
	case 11:
		return Digit(0)
	case 10:
		return LetterA
	default:
		return Digit(expected)
	}
}
