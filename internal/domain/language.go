package domain

import "strings"

// Language is a supported conversation language code, e.g. "hi" or "en".
// Raw strings are converted into Language values only by the metadata
// validator; downstream components never see unvalidated codes.
type Language string

const (
	LanguageHindi   Language = "hi"
	LanguageEnglish Language = "en"
)

// CanonicalLanguageTag lowercases and trims a raw language tag and strips a
// region subtag, so "hi-IN" and " HI " both canonicalize to "hi".
func CanonicalLanguageTag(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if base, _, ok := strings.Cut(tag, "-"); ok {
		return base
	}
	return tag
}
