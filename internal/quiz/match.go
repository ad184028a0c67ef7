package quiz

import (
	"strings"
	"unicode"

	unidecode "github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
)

// MatchPolicy decides whether a typed answer is equivalent to the reference answer.
// Enabled steps always run in this order: trim, collapse whitespace, case fold,
// transliterate to ASCII, drop non-letters.
type MatchPolicy struct {
	TrimWhitespace      bool
	NormalizeWhitespace bool
	IgnoreCase          bool
	IgnoreAccents       bool
	IgnoreNonAlphabetic bool
}

// DefaultMatchPolicy enables every normalization step
func DefaultMatchPolicy() MatchPolicy {
	return MatchPolicy{
		TrimWhitespace:      true,
		NormalizeWhitespace: true,
		IgnoreCase:          true,
		IgnoreAccents:       true,
		IgnoreNonAlphabetic: true,
	}
}

// Matches reports whether candidate is accepted for reference
func (p MatchPolicy) Matches(reference, candidate string) bool {
	return p.Normalize(reference) == p.Normalize(candidate)
}

// Normalize applies the enabled steps to s
func (p MatchPolicy) Normalize(s string) string {
	s = p.normalizeSpacingAndCase(s)
	if p.IgnoreAccents {
		// transliteration can emit capitals and spaces, e.g. for CJK input
		s = p.normalizeSpacingAndCase(unidecode.Unidecode(s))
	}
	if p.IgnoreNonAlphabetic {
		s = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, s)
	}
	return s
}

func (p MatchPolicy) normalizeSpacingAndCase(s string) string {
	if p.TrimWhitespace {
		s = strings.TrimSpace(s)
	}
	if p.NormalizeWhitespace {
		s = strings.Join(strings.Fields(s), " ")
	}
	if p.IgnoreCase {
		// a Caser keeps state, so one is built per call
		s = cases.Fold().String(s)
	}
	return s
}
