// Package rfc validates Mexican taxpayer identifiers (Registro Federal de
// Contribuyentes).
//
// An RFC is made of a three or four letter name code, a six digit date
// (YYMMDD), a two character homoclave and a check digit. Four letter codes
// belong to individuals (Physical), three letter codes to legal entities
// (Moral). The check digit is a weighted modulo 11 sum over a fixed 40 symbol
// alphabet; a result of ten is written as the letter A.
//
// # Usage
//
//	switch rfc.Validate("VACE611210MQ9") {
//	case rfc.Physical:
//	    // individual
//	case rfc.Moral:
//	    // legal entity
//	default:
//	    // invalid
//	}
//
// Generic placeholders are accepted unless RejectGeneric is passed:
//
//	rfc.Validate("XAXX010101000")                      // Physical
//	rfc.Validate("XAXX010101000", rfc.RejectGeneric()) // Error
//
// # Input
//
// Input is matched exactly: it must be uppercase and is not trimmed. A
// single space, hyphen, or space-hyphen-space may separate the letters from
// the date and the date from the homoclave. Dates are only range checked
// (month 01-12, day 01-31), so 610231 is accepted.
//
// All functions are pure and safe for concurrent use.
package rfc
