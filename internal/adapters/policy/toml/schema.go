package toml

import (
	"fmt"

	"github.com/sperrin/voiceroute/internal/domain"
)

const currentSchemaVersion = 1

// Field order matters for marshaling: top-level scalars and plain arrays
// must precede the table-typed fields or the emitted document nests them
// under the wrong table.
type fileSchema struct {
	Version     int                `toml:"version"`
	Style       []string           `toml:"style,omitempty"`
	Languages   languagesSchema    `toml:"languages"`
	Modes       modesSchema        `toml:"modes"`
	Specialists []specialistSchema `toml:"specialists"`
	Locales     []localeSchema     `toml:"locales"`
	Pipeline    pipelineSchema     `toml:"pipeline,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported policy schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type languagesSchema struct {
	Supported []string `toml:"supported"`
	Default   string   `toml:"default,omitempty"`
}

type modesSchema struct {
	Supported []string `toml:"supported"`
	Fallback  string   `toml:"fallback"`
}

type specialistSchema struct {
	Mode       string   `toml:"mode"`
	Persona    string   `toml:"persona"`
	Directives []string `toml:"directives,omitempty"`
}

type localeSchema struct {
	Language string `toml:"language"`
	Name     string `toml:"name"`
	Speak    string `toml:"speak"`
	Greeting string `toml:"greeting,omitempty"`
	Register string `toml:"register,omitempty"`
}

type pipelineSchema struct {
	DefaultVoice string        `toml:"default_voice,omitempty"`
	STT          sttSchema     `toml:"stt,omitempty"`
	LLM          llmSchema     `toml:"llm,omitempty"`
	Voices       []voiceSchema `toml:"voices,omitempty"`
}

type sttSchema struct {
	Model string `toml:"model,omitempty"`
}

type llmSchema struct {
	Provider string `toml:"provider,omitempty"`
	Model    string `toml:"model,omitempty"`
}

type voiceSchema struct {
	ID           string `toml:"id"`
	Engine       string `toml:"engine"`
	Model        string `toml:"model,omitempty"`
	Speaker      string `toml:"speaker,omitempty"`
	LanguageCode string `toml:"language_code,omitempty"`
	SampleRate   int    `toml:"sample_rate,omitempty"`
}

// Schema converts a policy into its marshalable file form, for callers
// that print the effective policy document.
func Schema(policy domain.RoutingPolicy) any {
	return toSchema(policy)
}

func fromSchema(file fileSchema) domain.RoutingPolicy {
	policy := domain.RoutingPolicy{
		Languages: domain.LanguageRule{
			Supported: make([]domain.Language, 0, len(file.Languages.Supported)),
			Default:   domain.Language(file.Languages.Default),
		},
		Modes: domain.ModeRule{
			Supported: make([]domain.Mode, 0, len(file.Modes.Supported)),
			Fallback:  domain.Mode(file.Modes.Fallback),
		},
		Style: append([]string(nil), file.Style...),
		Pipeline: domain.PipelineDefaults{
			STT:          domain.STTDefaults{Model: file.Pipeline.STT.Model},
			LLM:          domain.LLMDefaults{Provider: file.Pipeline.LLM.Provider, Model: file.Pipeline.LLM.Model},
			DefaultVoice: file.Pipeline.DefaultVoice,
		},
	}

	for _, language := range file.Languages.Supported {
		policy.Languages.Supported = append(policy.Languages.Supported, domain.Language(language))
	}
	for _, mode := range file.Modes.Supported {
		policy.Modes.Supported = append(policy.Modes.Supported, domain.Mode(mode))
	}

	for _, specialist := range file.Specialists {
		policy.Specialists = append(policy.Specialists, domain.SpecialistTemplate{
			Mode:       domain.Mode(specialist.Mode),
			Persona:    specialist.Persona,
			Directives: append([]string(nil), specialist.Directives...),
		})
	}

	for _, locale := range file.Locales {
		policy.Locales = append(policy.Locales, domain.Locale{
			Language: domain.Language(locale.Language),
			Name:     locale.Name,
			Speak:    locale.Speak,
			Greeting: locale.Greeting,
			Register: locale.Register,
		})
	}

	for _, voice := range file.Pipeline.Voices {
		policy.Pipeline.Voices = append(policy.Pipeline.Voices, domain.VoiceProfile{
			ID:           voice.ID,
			Engine:       voice.Engine,
			Model:        voice.Model,
			Speaker:      voice.Speaker,
			LanguageCode: voice.LanguageCode,
			SampleRate:   voice.SampleRate,
		})
	}

	return policy
}

func toSchema(policy domain.RoutingPolicy) fileSchema {
	file := fileSchema{
		Version: currentSchemaVersion,
		Languages: languagesSchema{
			Supported: make([]string, 0, len(policy.Languages.Supported)),
			Default:   string(policy.Languages.Default),
		},
		Modes: modesSchema{
			Supported: make([]string, 0, len(policy.Modes.Supported)),
			Fallback:  string(policy.Modes.Fallback),
		},
		Style: append([]string(nil), policy.Style...),
		Pipeline: pipelineSchema{
			DefaultVoice: policy.Pipeline.DefaultVoice,
			STT:          sttSchema{Model: policy.Pipeline.STT.Model},
			LLM:          llmSchema{Provider: policy.Pipeline.LLM.Provider, Model: policy.Pipeline.LLM.Model},
		},
	}

	for _, language := range policy.Languages.Supported {
		file.Languages.Supported = append(file.Languages.Supported, string(language))
	}
	for _, mode := range policy.Modes.Supported {
		file.Modes.Supported = append(file.Modes.Supported, string(mode))
	}

	for _, specialist := range policy.Specialists {
		file.Specialists = append(file.Specialists, specialistSchema{
			Mode:       string(specialist.Mode),
			Persona:    specialist.Persona,
			Directives: append([]string(nil), specialist.Directives...),
		})
	}

	for _, locale := range policy.Locales {
		file.Locales = append(file.Locales, localeSchema{
			Language: string(locale.Language),
			Name:     locale.Name,
			Speak:    locale.Speak,
			Greeting: locale.Greeting,
			Register: locale.Register,
		})
	}

	for _, voice := range policy.Pipeline.Voices {
		file.Pipeline.Voices = append(file.Pipeline.Voices, voiceSchema{
			ID:           voice.ID,
			Engine:       voice.Engine,
			Model:        voice.Model,
			Speaker:      voice.Speaker,
			LanguageCode: voice.LanguageCode,
			SampleRate:   voice.SampleRate,
		})
	}

	return file
}
