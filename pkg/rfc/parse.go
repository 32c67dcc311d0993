package rfc

import (
	"regexp"
	"unicode/utf8"
)

// Pattern matches a whole RFC. Groups: letters, date, homoclave, check digit.
// A single space and/or hyphen may separate the letters from the date and
// the date from the homoclave. Day bounds are not checked against the month.
const Pattern = `^([A-ZÑ&]{3,4}) ?(?:- ?)?(\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])) ?(?:- ?)?([A-Z\d]{2})([A\d])$`

var rfcRegex = regexp.MustCompile(Pattern)

// Parts is the structural decomposition of an RFC.
type Parts struct {
	Letters    string
	Date       string
	Homoclave  string
	CheckDigit CheckSymbol
}

// Parse splits s into its RFC components. The whole string must match,
// separators included; no trimming or case folding is applied.
func Parse(s string) (Parts, error) {
	m := rfcRegex.FindStringSubmatch(s)
	if m == nil {
		return Parts{}, ErrInvalidFormat
	}

	r, _ := utf8.DecodeRuneInString(m[4])
	check, ok := ParseCheckSymbol(r)
	if !ok {
		return Parts{}, ErrInvalidFormat
	}

	return Parts{
		Letters:    m[1],
		Date:       m[2],
		Homoclave:  m[3],
		CheckDigit: check,
	}, nil
}

// Base returns the RFC without separators or check digit.
func (p Parts) Base() string {
	return p.Letters + p.Date + p.Homoclave
}

// String returns the compact RFC with the check digit as it was typed.
func (p Parts) String() string {
	return p.Base() + p.CheckDigit.String()
}

// Kind classifies the RFC by the length of its letter block.
func (p Parts) Kind() Kind {
	if utf8.RuneCountInString(p.Base()) == 12 {
		return Physical
	}
	return Moral
}
