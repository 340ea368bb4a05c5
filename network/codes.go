package network

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCode is returned for a code token without a leading line id
var ErrMalformedCode = errors.New("malformed station code")

// Code is one stop on one line, e.g. "NS24" is stop 24 of line "NS"
type Code struct {
	Raw     string `json:"code"`
	Line    string `json:"line"`
	Ordinal int    `json:"ordinal"`
}

// SplitCodes splits a compound code field on sep. Tokens are trimmed; empty
// tokens are kept so the parser can report them.
func SplitCodes(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// ParseCode extracts the line id (the leading run of A-Z) and the ordinal
// (the first run of digits, 0 when there is none) from token.
func ParseCode(token string) (Code, error) {
	n := 0
	for n < len(token) && token[n] >= 'A' && token[n] <= 'Z' {
		n++
	}
	if n == 0 {
		return Code{}, fmt.Errorf("%w: %q", ErrMalformedCode, token)
	}

	ordinal := 0
	if start := strings.IndexFunc(token, isDigit); start >= 0 {
		end := start
		for end < len(token) && isDigit(rune(token[end])) {
			end++
		}
		v, err := strconv.Atoi(token[start:end])
		if err != nil {
			return Code{}, fmt.Errorf("%w: %q: %v", ErrMalformedCode, token, err)
		}
		ordinal = v
	}

	return Code{Raw: token, Line: token[:n], Ordinal: ordinal}, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
