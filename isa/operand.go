package isa

import (
	"strconv"
	"strings"
)

// DecodeRegister strips every non-digit from token and parses the
// remaining digits in base.
func DecodeRegister(token string, base int) (index int64, err error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, token)

	if len(digits) == 0 {
		err = ErrParseRegister(token)
		return
	}

	index, err = strconv.ParseInt(digits, base, 64)
	if err != nil {
		err = ErrParseRegister(token)
	}

	return
}

// DecodeRegister10 decodes a register index in decimal.
func DecodeRegister10(token string) (index int64, err error) {
	return DecodeRegister(token, 10)
}

// DecodeRegister16 decodes the digits of a register as hexadecimal.
// "r10" is register 16.
func DecodeRegister16(token string) (index int64, err error) {
	return DecodeRegister(token, 16)
}

// DecodeImmediate parses an optionally signed literal in base.
// A base 16 literal may carry a 0x prefix.
func DecodeImmediate(token string, base int) (value int64, err error) {
	word := strings.TrimSpace(token)

	negative := false
	switch {
	case strings.HasPrefix(word, "-"):
		negative = true
		word = word[1:]
	case strings.HasPrefix(word, "+"):
		word = word[1:]
	}

	if base == 16 && len(word) > 2 && (word[:2] == "0x" || word[:2] == "0X") {
		word = word[2:]
	}

	u63, err := strconv.ParseUint(word, base, 63)
	if err != nil {
		err = ErrParseNumber(token)
		return
	}

	value = int64(u63)
	if negative {
		value = -value
	}

	return
}
