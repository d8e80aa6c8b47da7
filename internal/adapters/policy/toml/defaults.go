package toml

import "github.com/sperrin/voiceroute/internal/domain"

// DefaultPolicy is the built-in routing policy: four specialist modes in
// Hindi and English, Hindi as the configured fallback language, and the
// stock pipeline voices. `policy init` writes it out for operators to edit.
func DefaultPolicy() domain.RoutingPolicy {
	return domain.RoutingPolicy{
		Languages: domain.LanguageRule{
			Supported: []domain.Language{domain.LanguageHindi, domain.LanguageEnglish},
			Default:   domain.LanguageHindi,
		},
		Modes: domain.ModeRule{
			Supported: []domain.Mode{domain.ModeGeneral, domain.ModeSales, domain.ModeSupport, domain.ModeTechnical},
			Fallback:  domain.ModeGeneral,
		},
		Style: []string{
			"Keep responses short and concise.",
			"Never use emojis.",
		},
		Specialists: []domain.SpecialistTemplate{
			{
				Mode:    domain.ModeGeneral,
				Persona: "You are a helpful general-purpose voice assistant.",
			},
			{
				Mode:    domain.ModeSales,
				Persona: "You are a sales assistant.",
				Directives: []string{
					"Understand user needs first, then recommend suitable options with clear benefits and price clarity.",
				},
			},
			{
				Mode:    domain.ModeSupport,
				Persona: "You are a customer support assistant.",
				Directives: []string{
					"Diagnose the problem step-by-step, ask only necessary follow-up questions, and provide actionable fixes.",
				},
			},
			{
				Mode:    domain.ModeTechnical,
				Persona: "You are a technical assistant.",
				Directives: []string{
					"Explain technical concepts accurately, provide practical implementation steps, and call out assumptions.",
				},
			},
		},
		Locales: []domain.Locale{
			{
				Language: domain.LanguageHindi,
				Name:     "Hindi",
				Speak:    "Respond primarily in Hindi.",
				Greeting: "Namaste",
				Register: "Keep the register respectful and courteous.",
			},
			{
				Language: domain.LanguageEnglish,
				Name:     "English",
				Speak:    "Respond in English.",
			},
		},
		Pipeline: domain.PipelineDefaults{
			STT: domain.STTDefaults{Model: "nova-2"},
			LLM: domain.LLMDefaults{Provider: "groq", Model: "llama-3.3-70b-versatile"},
			Voices: []domain.VoiceProfile{
				{
					ID:           "sarvam",
					Engine:       "sarvam",
					Model:        "bulbul:v2",
					Speaker:      "vidya",
					LanguageCode: "hi-IN",
					SampleRate:   24000,
				},
				{
					ID:      "gemini",
					Engine:  "google",
					Model:   "models/gemini-2.5-flash-preview-tts",
					Speaker: "Zephyr",
				},
			},
			DefaultVoice: "sarvam",
		},
	}
}
