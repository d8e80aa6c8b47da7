package domain

// RawMetadata is the untrusted key-value mapping supplied by the frontend or
// transport collaborator at session connect time. All fields are optional.
type RawMetadata struct {
	Language  string `json:"language,omitempty"`
	Voice     string `json:"voice,omitempty"`
	Mode      string `json:"mode,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// SessionMetadata is the validated form of RawMetadata. It is immutable for
// the session's lifetime and passed by value.
type SessionMetadata struct {
	Language Language
	// Voice is an opaque synthesis-voice identifier. It is passed through
	// unchanged; capability checking belongs to the synthesis collaborator.
	Voice     string
	Mode      Mode
	SessionID string
}

// RouteKey projects the validated metadata onto its route. The validator
// constrains both fields to their closed sets, so this is total.
func (m SessionMetadata) RouteKey() RouteKey {
	return RouteKey{Mode: m.Mode, Language: m.Language}
}
