// Package pipeline materializes a routing decision into the concrete
// settings the speech pipeline collaborator runs the session with. The
// engines (STT, LLM, TTS) are external; this only selects their
// configuration.
package pipeline

import "github.com/sperrin/voiceroute/internal/domain"

type Profile struct {
	Route string    `json:"route"`
	STT   STTConfig `json:"stt"`
	LLM   LLMConfig `json:"llm"`
	TTS   TTSConfig `json:"tts"`
}

type STTConfig struct {
	Model    string `json:"model"`
	Language string `json:"language"`
}

type LLMConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type TTSConfig struct {
	Engine       string `json:"engine"`
	Model        string `json:"model,omitempty"`
	Speaker      string `json:"speaker,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	SampleRate   int    `json:"sample_rate,omitempty"`
	// Fallback is set when metadata.voice named no configured voice and
	// the default was substituted.
	Fallback bool `json:"fallback,omitempty"`
}

// Builder selects pipeline settings from the policy's defaults. Voice
// identifiers are opaque pass-through values; an unknown id falls back to
// the configured default voice rather than failing the session.
type Builder struct {
	defaults domain.PipelineDefaults
	voices   map[string]domain.VoiceProfile
}

func NewBuilder(defaults domain.PipelineDefaults) *Builder {
	voices := make(map[string]domain.VoiceProfile, len(defaults.Voices))
	for _, voice := range defaults.Voices {
		voices[voice.ID] = voice
	}

	return &Builder{defaults: defaults, voices: voices}
}

func (b *Builder) Build(decision domain.RoutingDecision) Profile {
	return Profile{
		Route: decision.Key.String(),
		STT: STTConfig{
			Model:    b.defaults.STT.Model,
			Language: string(decision.Key.Language),
		},
		LLM: LLMConfig{
			Provider: b.defaults.LLM.Provider,
			Model:    b.defaults.LLM.Model,
		},
		TTS: b.tts(decision.Metadata.Voice),
	}
}

func (b *Builder) tts(voiceID string) TTSConfig {
	if voice, ok := b.voices[voiceID]; ok {
		return toTTSConfig(voice, false)
	}

	if voice, ok := b.voices[b.defaults.DefaultVoice]; ok {
		return toTTSConfig(voice, voiceID != "")
	}

	return TTSConfig{}
}

func toTTSConfig(voice domain.VoiceProfile, fallback bool) TTSConfig {
	return TTSConfig{
		Engine:       voice.Engine,
		Model:        voice.Model,
		Speaker:      voice.Speaker,
		LanguageCode: voice.LanguageCode,
		SampleRate:   voice.SampleRate,
		Fallback:     fallback,
	}
}
