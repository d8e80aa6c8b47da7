package application

import (
	"fmt"
	"strings"

	"github.com/sperrin/voiceroute/internal/domain"
)

// Localizer applies a language's phrasing rules on top of a specialist's
// base instruction. Like the registry it is total over the policy's
// supported languages, checked at construction.
type Localizer struct {
	locales map[domain.Language]domain.Locale
}

func NewLocalizer(policy domain.RoutingPolicy) (*Localizer, error) {
	supported := make(map[domain.Language]struct{}, len(policy.Languages.Supported))
	for _, language := range policy.Languages.Supported {
		supported[language] = struct{}{}
	}

	locales := make(map[domain.Language]domain.Locale, len(policy.Locales))
	for _, locale := range policy.Locales {
		if _, ok := locales[locale.Language]; ok {
			return nil, fmt.Errorf("%w: duplicate locale for language %q", domain.ErrRegistryMisconfigured, locale.Language)
		}
		if _, ok := supported[locale.Language]; !ok {
			return nil, fmt.Errorf("%w: locale %q is not in the supported language set", domain.ErrRegistryMisconfigured, locale.Language)
		}
		locales[locale.Language] = locale
	}

	for _, language := range policy.Languages.Supported {
		if _, ok := locales[language]; !ok {
			return nil, fmt.Errorf("%w: supported language %q has no locale", domain.ErrRegistryMisconfigured, language)
		}
	}

	if policy.Languages.Default != "" {
		if _, ok := locales[policy.Languages.Default]; !ok {
			return nil, fmt.Errorf("%w: default language %q has no locale", domain.ErrRegistryMisconfigured, policy.Languages.Default)
		}
	}

	return &Localizer{locales: locales}, nil
}

// Locale returns the phrasing rules configured for a language.
func (l *Localizer) Locale(language domain.Language) (domain.Locale, bool) {
	locale, ok := l.locales[language]
	return locale, ok
}

// Localize renders the final instruction: persona, speak directive,
// greeting convention, register note, mode directives, then the shared
// style rules. Every part is a complete sentence so the result reads as
// one coherent system prompt.
func (l *Localizer) Localize(base domain.BaseInstruction, language domain.Language) (domain.Instruction, error) {
	locale, ok := l.locales[language]
	if !ok {
		return "", fmt.Errorf("%w: no locale for language %q", domain.ErrRegistryMisconfigured, language)
	}

	parts := make([]string, 0, 4+len(base.Directives)+len(base.Style))
	parts = append(parts, base.Persona, locale.Speak)
	if locale.Greeting != "" {
		parts = append(parts, fmt.Sprintf("Open the conversation with %q.", locale.Greeting))
	}
	if locale.Register != "" {
		parts = append(parts, locale.Register)
	}
	parts = append(parts, base.Directives...)
	parts = append(parts, base.Style...)

	return domain.Instruction(strings.Join(parts, " ")), nil
}
