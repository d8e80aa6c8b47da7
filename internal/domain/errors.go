package domain

import "errors"

var (
	// ErrInvalidLanguage means the raw metadata's language is missing or
	// unsupported and the policy configures no default. Fatal to session
	// start; the caller decides whether to reject or prompt.
	ErrInvalidLanguage = errors.New("invalid session language")

	// ErrRegistryMisconfigured means the validator's closed sets and the
	// registry's coverage have drifted apart. Fatal at startup, never a
	// per-session error.
	ErrRegistryMisconfigured = errors.New("specialist registry misconfigured")

	ErrPolicyNotFound = errors.New("routing policy not found")
)
