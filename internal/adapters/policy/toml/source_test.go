package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sperrin/voiceroute/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T) (*Source, string) {
	t.Helper()

	policyPath := filepath.Join(t.TempDir(), "policy.toml")
	config := viper.New()
	config.Set("policy.path", policyPath)

	source, err := NewSource(config)
	require.NoError(t, err)
	return source, policyPath
}

func TestSourceLoadsDefaultPolicyWhenFileMissing(t *testing.T) {
	t.Parallel()

	source, _ := newTestSource(t)

	policy, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), policy)
}

func TestSourceRoundTrip(t *testing.T) {
	t.Parallel()

	source, policyPath := newTestSource(t)

	saved := DefaultPolicy()
	saved.Languages.Default = ""
	saved.Modes.Supported = append(saved.Modes.Supported, domain.Mode("billing"))
	saved.Specialists = append(saved.Specialists, domain.SpecialistTemplate{
		Mode:       "billing",
		Persona:    "You are a billing assistant.",
		Directives: []string{"Confirm the invoice number before discussing amounts."},
	})

	require.NoError(t, source.Save(context.Background(), saved))

	info, err := os.Stat(policyPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSourceRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	source, policyPath := newTestSource(t)
	require.NoError(t, os.WriteFile(policyPath, []byte("version = 99\n"), 0o600))

	_, err := source.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported policy schema version")
}

func TestSourceRejectsMalformedTOML(t *testing.T) {
	t.Parallel()

	source, policyPath := newTestSource(t)
	require.NoError(t, os.WriteFile(policyPath, []byte("languages = [[["), 0o600))

	_, err := source.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode policy file")
}

func TestSourceLoadHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	source, _ := newTestSource(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDefaultPolicyIsComplete(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()

	assert.Len(t, policy.Modes.Supported, 4)
	assert.Len(t, policy.Languages.Supported, 2)
	assert.Len(t, policy.Specialists, len(policy.Modes.Supported))
	assert.Len(t, policy.Locales, len(policy.Languages.Supported))
	assert.Equal(t, domain.ModeGeneral, policy.Modes.Fallback)
	assert.Equal(t, domain.LanguageHindi, policy.Languages.Default)
	assert.Equal(t, "sarvam", policy.Pipeline.DefaultVoice)
}
