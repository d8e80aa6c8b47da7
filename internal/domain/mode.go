package domain

import "strings"

// Mode selects the specialist conversation policy for a session.
type Mode string

const (
	ModeGeneral   Mode = "general"
	ModeSales     Mode = "sales"
	ModeSupport   Mode = "support"
	ModeTechnical Mode = "technical"
)

// CanonicalModeTag lowercases and trims a raw mode string. Membership in the
// supported set is the validator's job, not this function's.
func CanonicalModeTag(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
