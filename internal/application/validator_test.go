package application

import (
	"errors"
	"testing"

	policytoml "github.com/sperrin/voiceroute/internal/adapters/policy/toml"
	"github.com/sperrin/voiceroute/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rejectLanguagePolicy() domain.RoutingPolicy {
	policy := policytoml.DefaultPolicy()
	policy.Languages.Default = ""
	return policy
}

func TestValidatorModeFallbackIsSilent(t *testing.T) {
	validator := NewValidator(policytoml.DefaultPolicy())

	tests := []struct {
		name string
		raw  string
	}{
		{name: "absent", raw: ""},
		{name: "unknown", raw: "unknown"},
		{name: "whitespace", raw: "   "},
		{name: "typo", raw: "salse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := validator.Validate(domain.RawMetadata{Language: "en", Mode: tt.raw})
			require.NoError(t, err, "malformed mode must never fail the session")
			assert.Equal(t, domain.ModeGeneral, meta.Mode)
		})
	}
}

func TestValidatorModeIsCaseInsensitive(t *testing.T) {
	validator := NewValidator(policytoml.DefaultPolicy())

	meta, err := validator.Validate(domain.RawMetadata{Language: "en", Mode: " Support "})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeSupport, meta.Mode)
}

func TestValidatorLanguageDefaultSubstitution(t *testing.T) {
	validator := NewValidator(policytoml.DefaultPolicy())

	tests := []struct {
		name string
		raw  string
	}{
		{name: "absent", raw: ""},
		{name: "unsupported", raw: "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := validator.Validate(domain.RawMetadata{Language: tt.raw, Mode: "sales"})
			require.NoError(t, err)
			assert.Equal(t, domain.LanguageHindi, meta.Language, "configured default language must be substituted")
		})
	}
}

func TestValidatorLanguageRejectedWithoutDefault(t *testing.T) {
	validator := NewValidator(rejectLanguagePolicy())

	_, err := validator.Validate(domain.RawMetadata{Mode: "sales"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidLanguage))

	_, err = validator.Validate(domain.RawMetadata{Language: "fr"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidLanguage))
	assert.Contains(t, err.Error(), "fr")
}

// Language and mode deliberately fail differently: language is a hard error
// unless a default is configured, mode always degrades to the fallback.
func TestValidatorAsymmetryBetweenLanguageAndMode(t *testing.T) {
	validator := NewValidator(rejectLanguagePolicy())

	_, err := validator.Validate(domain.RawMetadata{Mode: "support"})
	require.Error(t, err)

	meta, err := validator.Validate(domain.RawMetadata{Language: "hi"})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeGeneral, meta.Mode)
}

func TestValidatorNormalizesRegionSubtags(t *testing.T) {
	validator := NewValidator(policytoml.DefaultPolicy())

	meta, err := validator.Validate(domain.RawMetadata{Language: "hi-IN"})
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageHindi, meta.Language)
}

func TestValidatorPassesVoiceThroughUnchanged(t *testing.T) {
	validator := NewValidator(policytoml.DefaultPolicy())

	meta, err := validator.Validate(domain.RawMetadata{Language: "en", Voice: " Unknown-Voice "})
	require.NoError(t, err)
	assert.Equal(t, " Unknown-Voice ", meta.Voice)
}
