package application

import (
	"fmt"

	"github.com/sperrin/voiceroute/internal/domain"
)

// Registry holds one specialist instruction generator per supported mode.
// It is built once at startup, checked for completeness against the
// policy's closed mode set, and read concurrently afterwards without
// synchronization.
type Registry struct {
	specialists map[domain.Mode]domain.SpecialistTemplate
	style       []string
}

func NewRegistry(policy domain.RoutingPolicy) (*Registry, error) {
	supported := make(map[domain.Mode]struct{}, len(policy.Modes.Supported))
	for _, mode := range policy.Modes.Supported {
		supported[mode] = struct{}{}
	}

	specialists := make(map[domain.Mode]domain.SpecialistTemplate, len(policy.Specialists))
	for _, template := range policy.Specialists {
		if _, ok := specialists[template.Mode]; ok {
			return nil, fmt.Errorf("%w: duplicate specialist template for mode %q", domain.ErrRegistryMisconfigured, template.Mode)
		}
		if _, ok := supported[template.Mode]; !ok {
			return nil, fmt.Errorf("%w: specialist template %q is not in the supported mode set", domain.ErrRegistryMisconfigured, template.Mode)
		}
		specialists[template.Mode] = template
	}

	for _, mode := range policy.Modes.Supported {
		if _, ok := specialists[mode]; !ok {
			return nil, fmt.Errorf("%w: supported mode %q has no specialist template", domain.ErrRegistryMisconfigured, mode)
		}
	}

	if _, ok := specialists[policy.Modes.Fallback]; !ok {
		return nil, fmt.Errorf("%w: fallback mode %q has no specialist template", domain.ErrRegistryMisconfigured, policy.Modes.Fallback)
	}

	return &Registry{
		specialists: specialists,
		style:       append([]string(nil), policy.Style...),
	}, nil
}

// Base generates the language-neutral instruction for a mode. Given the
// completeness check in NewRegistry this cannot fail for any RouteKey; a
// miss here is an invariant violation, not a user error.
func (r *Registry) Base(mode domain.Mode) (domain.BaseInstruction, error) {
	template, ok := r.specialists[mode]
	if !ok {
		return domain.BaseInstruction{}, fmt.Errorf("%w: no specialist template for mode %q", domain.ErrRegistryMisconfigured, mode)
	}

	return domain.BaseInstruction{
		Persona:    template.Persona,
		Directives: append([]string(nil), template.Directives...),
		Style:      append([]string(nil), r.style...),
	}, nil
}
