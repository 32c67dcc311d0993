// Package email checks the syntax of email addresses.
//
// Only the format is checked: the domain is not resolved and the mailbox is
// not contacted. An address is valid when it parses as an RFC 5322 address
// and the parsed address is exactly the (trimmed) input, which rejects
// display names, angle brackets and anything the parser would rewrite.
package email

import (
	"net/mail"
	"strings"
)

// Validate reports whether s is a bare email address such as
// user@example.com. Surrounding whitespace is ignored; a trailing dot is not.
func Validate(s string) bool {
	s = strings.TrimSpace(s)

	// net/mail accepts a trailing dot in the domain
	if s == "" || strings.HasSuffix(s, ".") {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	return addr.Address == s
}
