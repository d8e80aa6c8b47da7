package application

import (
	"errors"
	"testing"

	policytoml "github.com/sperrin/voiceroute/internal/adapters/policy/toml"
	"github.com/sperrin/voiceroute/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBaseForEverySupportedMode(t *testing.T) {
	policy := policytoml.DefaultPolicy()
	registry, err := NewRegistry(policy)
	require.NoError(t, err)

	for _, mode := range policy.Modes.Supported {
		base, err := registry.Base(mode)
		require.NoError(t, err)
		assert.NotEmpty(t, base.Persona)
		assert.Equal(t, policy.Style, base.Style)
	}
}

func TestRegistryRejectsSupportedModeWithoutTemplate(t *testing.T) {
	policy := policytoml.DefaultPolicy()
	policy.Modes.Supported = append(policy.Modes.Supported, domain.Mode("billing"))

	_, err := NewRegistry(policy)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRegistryMisconfigured))
	assert.Contains(t, err.Error(), "billing")
}

func TestRegistryRejectsTemplateOutsideSupportedModes(t *testing.T) {
	policy := policytoml.DefaultPolicy()
	policy.Specialists = append(policy.Specialists, domain.SpecialistTemplate{
		Mode:    domain.Mode("billing"),
		Persona: "You are a billing assistant.",
	})

	_, err := NewRegistry(policy)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRegistryMisconfigured))
}

func TestRegistryRejectsDuplicateTemplates(t *testing.T) {
	policy := policytoml.DefaultPolicy()
	policy.Specialists = append(policy.Specialists, policy.Specialists[0])

	_, err := NewRegistry(policy)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRegistryMisconfigured))
	assert.Contains(t, err.Error(), "duplicate")
}

func TestRegistryRejectsFallbackModeWithoutTemplate(t *testing.T) {
	policy := policytoml.DefaultPolicy()
	policy.Modes.Fallback = domain.Mode("concierge")

	_, err := NewRegistry(policy)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRegistryMisconfigured))
}

func TestRegistryBaseCopiesDirectives(t *testing.T) {
	registry, err := NewRegistry(policytoml.DefaultPolicy())
	require.NoError(t, err)

	base, err := registry.Base(domain.ModeSales)
	require.NoError(t, err)
	require.NotEmpty(t, base.Directives)

	base.Directives[0] = "mutated"

	again, err := registry.Base(domain.ModeSales)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Directives[0])
}
