package application

import (
	"fmt"

	"github.com/sperrin/voiceroute/internal/domain"
)

// Validator is the single boundary that converts untrusted metadata strings
// into the domain's closed-set values. Downstream components never operate
// on raw strings.
type Validator struct {
	languages       map[domain.Language]struct{}
	defaultLanguage domain.Language
	modes           map[domain.Mode]struct{}
	fallbackMode    domain.Mode
}

func NewValidator(policy domain.RoutingPolicy) *Validator {
	languages := make(map[domain.Language]struct{}, len(policy.Languages.Supported))
	for _, lang := range policy.Languages.Supported {
		languages[lang] = struct{}{}
	}

	modes := make(map[domain.Mode]struct{}, len(policy.Modes.Supported))
	for _, mode := range policy.Modes.Supported {
		modes[mode] = struct{}{}
	}

	return &Validator{
		languages:       languages,
		defaultLanguage: policy.Languages.Default,
		modes:           modes,
		fallbackMode:    policy.Modes.Fallback,
	}
}

// Validate normalizes raw session metadata. Language is the only hard
// failure: a missing or unsupported code fails with ErrInvalidLanguage
// unless the policy configures a default. A missing or unsupported mode
// silently degrades to the fallback mode and must never fail the session.
// Voice is passed through unchanged.
func (v *Validator) Validate(raw domain.RawMetadata) (domain.SessionMetadata, error) {
	language, err := v.language(raw.Language)
	if err != nil {
		return domain.SessionMetadata{}, err
	}

	return domain.SessionMetadata{
		Language:  language,
		Voice:     raw.Voice,
		Mode:      v.mode(raw.Mode),
		SessionID: raw.SessionID,
	}, nil
}

func (v *Validator) language(raw string) (domain.Language, error) {
	tag := domain.CanonicalLanguageTag(raw)
	if _, ok := v.languages[domain.Language(tag)]; ok {
		return domain.Language(tag), nil
	}

	if v.defaultLanguage != "" {
		return v.defaultLanguage, nil
	}

	if tag == "" {
		return "", fmt.Errorf("%w: no language supplied and no default configured", domain.ErrInvalidLanguage)
	}

	return "", fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidLanguage, tag)
}

func (v *Validator) mode(raw string) domain.Mode {
	tag := domain.CanonicalModeTag(raw)
	if _, ok := v.modes[domain.Mode(tag)]; ok {
		return domain.Mode(tag)
	}

	return v.fallbackMode
}
