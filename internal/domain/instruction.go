package domain

// Instruction is the localized behavioral directive handed to the
// downstream conversation pipeline as the language model's system prompt.
// It is always derived from a resolved RouteKey, never from raw metadata.
type Instruction string

// BaseInstruction is the language-neutral output of a specialist generator,
// before the locale's phrasing rules are applied.
type BaseInstruction struct {
	// Persona is the opening role sentence, e.g.
	// "You are a customer support assistant."
	Persona string
	// Directives are the mode-specific behavioral rules: tone, allowed
	// topics, escalation policy, disclosure rules.
	Directives []string
	// Style holds policy-wide delivery rules shared by every mode.
	Style []string
}
