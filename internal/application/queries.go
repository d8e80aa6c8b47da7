package application

import "github.com/sperrin/voiceroute/internal/domain"

// RouteSummary is the read model behind `voiceroute routes`: one row per
// resolvable (mode, language) combination.
type RouteSummary struct {
	Route      domain.RouteKey
	Persona    string
	LocaleName string
}

// Summaries describes every resolvable route in policy order.
func (s *Supervisor) Summaries() []RouteSummary {
	return append([]RouteSummary(nil), s.summaries...)
}
