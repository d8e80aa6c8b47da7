package domain

import "time"

// RoutingDecision is the supervisor's output for one session: the resolved
// route, the materialized instruction, and the metadata it was derived from.
// A decision is assembled once and never mutated; a reroute produces a new
// decision that fully replaces the old one.
type RoutingDecision struct {
	Key         RouteKey
	Instruction Instruction
	Metadata    SessionMetadata
	CreatedAt   time.Time
}

// Session is one end-to-end conversational interaction. It keeps every
// decision made for the session so that a reroute leaves an audit trail of
// what changed.
type Session struct {
	ID        string
	Decisions []RoutingDecision
}

// Active returns the decision currently governing the session, or false
// when the session has not been routed yet.
func (s *Session) Active() (RoutingDecision, bool) {
	if len(s.Decisions) == 0 {
		return RoutingDecision{}, false
	}
	return s.Decisions[len(s.Decisions)-1], true
}

// Apply records a new decision as the active one. Earlier decisions are
// retained, never overwritten.
func (s *Session) Apply(decision RoutingDecision) {
	s.ID = decision.Metadata.SessionID
	s.Decisions = append(s.Decisions, decision)
}
