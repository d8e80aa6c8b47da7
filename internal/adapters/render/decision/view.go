// Package decision renders routing decisions and the route table for the
// terminal.
package decision

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sperrin/voiceroute/internal/adapters/pipeline"
	"github.com/sperrin/voiceroute/internal/application"
	"github.com/sperrin/voiceroute/internal/domain"
)

// RenderDecision prints one routed session: the selected route, the session
// correlation id, the pipeline settings, and the materialized instruction.
func RenderDecision(d domain.RoutingDecision, profile pipeline.Profile) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Routing Decision"),
		s.route.Render(fmt.Sprintf("route: %s", d.Key)),
		s.detail.Render(fmt.Sprintf("%s %s", s.key.Render("session:"), d.Metadata.SessionID)),
		s.detail.Render(fmt.Sprintf("%s %s (%s)", s.key.Render("stt:"), profile.STT.Model, profile.STT.Language)),
		s.detail.Render(fmt.Sprintf("%s %s/%s", s.key.Render("llm:"), profile.LLM.Provider, profile.LLM.Model)),
		s.detail.Render(ttsLine(profile.TTS, s)),
		s.section.Render(s.key.Render("instruction:")),
		s.detail.Render(string(d.Instruction)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func ttsLine(tts pipeline.TTSConfig, s styles) string {
	if tts.Engine == "" {
		return fmt.Sprintf("%s n/a", s.key.Render("tts:"))
	}

	line := fmt.Sprintf("%s %s", s.key.Render("tts:"), tts.Engine)
	if tts.Speaker != "" {
		line += fmt.Sprintf(" (%s)", tts.Speaker)
	}
	if tts.Fallback {
		line += " " + s.warning.Render("[fallback voice]")
	}

	return line
}

// RenderRoutes prints the table of every resolvable route.
func RenderRoutes(summaries []application.RouteSummary) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Configured Routes"),
		s.header.Render(fmt.Sprintf("routes: %d", len(summaries))),
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No routes configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, summary := range summaries {
		lines = append(lines, s.detail.Render(fmt.Sprintf("%s %s %s",
			s.route.Render(summary.Route.String()),
			s.header.Render(fmt.Sprintf("(%s)", summary.LocaleName)),
			summary.Persona,
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
