package domain

// RoutingPolicy is the externally-configurable surface of the supervisor:
// the closed sets of supported modes and languages, one specialist template
// per mode, one locale per language, and the speech-pipeline defaults.
// Operators add a mode or language by extending the policy file with the
// two symmetric entries; completeness is checked at startup.
type RoutingPolicy struct {
	Languages   LanguageRule
	Modes       ModeRule
	Style       []string
	Specialists []SpecialistTemplate
	Locales     []Locale
	Pipeline    PipelineDefaults
}

// LanguageRule holds the supported language codes and the policy for raw
// metadata that carries no resolvable language. An empty Default means the
// session is rejected; a non-empty Default is substituted instead.
type LanguageRule struct {
	Supported []Language
	Default   Language
}

// ModeRule holds the supported modes and the mode substituted for missing
// or malformed input. Unlike language, mode always has a safe fallback.
type ModeRule struct {
	Supported []Mode
	Fallback  Mode
}

// SpecialistTemplate is one mode's language-neutral instruction generator
// input: the persona sentence and the behavioral directives it expands to.
type SpecialistTemplate struct {
	Mode       Mode
	Persona    string
	Directives []string
}

// Locale carries one language's phrasing rules: the speak directive
// injected after the persona, the greeting convention, and the formality
// register note.
type Locale struct {
	Language Language
	Name     string
	Speak    string
	Greeting string
	Register string
}

// PipelineDefaults configures how a routing decision is materialized into
// a speech-pipeline profile. The engines themselves are external
// collaborators; this only selects their settings.
type PipelineDefaults struct {
	STT          STTDefaults
	LLM          LLMDefaults
	Voices       []VoiceProfile
	DefaultVoice string
}

type STTDefaults struct {
	Model string
}

type LLMDefaults struct {
	Provider string
	Model    string
}

// VoiceProfile describes one synthesis voice the pipeline can select by the
// opaque metadata.voice identifier.
type VoiceProfile struct {
	ID           string
	Engine       string
	Model        string
	Speaker      string
	LanguageCode string
	SampleRate   int
}
