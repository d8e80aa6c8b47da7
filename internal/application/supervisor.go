package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sperrin/voiceroute/internal/domain"
	"github.com/sperrin/voiceroute/internal/ports"
)

// Supervisor orchestrates one session's routing: validate the raw
// metadata, project the route key, generate the specialist's base
// instruction, localize it, and emit the decision record operators watch.
// It holds no per-session state; Route and Reroute are pure computations
// over the immutable registry and are safe for concurrent use.
type Supervisor struct {
	validator *Validator
	registry  *Registry
	localizer *Localizer
	log       ports.DecisionLog
	clock     ports.Clock
	summaries []RouteSummary
}

// NewSupervisor builds the routing components from the policy and verifies
// that every (mode, language) combination materializes an instruction.
// A policy whose closed sets and templates have drifted apart fails here,
// before any session is accepted, with ErrRegistryMisconfigured.
func NewSupervisor(policy domain.RoutingPolicy, log ports.DecisionLog, clock ports.Clock) (*Supervisor, error) {
	if log == nil {
		log = ports.NopDecisionLog{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	registry, err := NewRegistry(policy)
	if err != nil {
		return nil, err
	}

	localizer, err := NewLocalizer(policy)
	if err != nil {
		return nil, err
	}

	summaries := make([]RouteSummary, 0, len(policy.Modes.Supported)*len(policy.Languages.Supported))
	for _, mode := range policy.Modes.Supported {
		base, err := registry.Base(mode)
		if err != nil {
			return nil, err
		}
		for _, language := range policy.Languages.Supported {
			if _, err := localizer.Localize(base, language); err != nil {
				return nil, err
			}
			locale, _ := localizer.Locale(language)
			summaries = append(summaries, RouteSummary{
				Route:      domain.RouteKey{Mode: mode, Language: language},
				Persona:    base.Persona,
				LocaleName: locale.Name,
			})
		}
	}

	return &Supervisor{
		validator: NewValidator(policy),
		registry:  registry,
		localizer: localizer,
		log:       log,
		clock:     clock,
		summaries: summaries,
	}, nil
}

// Route computes the routing decision for a new session. Only an
// unresolvable language surfaces as an error; a malformed mode degrades to
// the fallback specialist. A session id is minted when the transport did
// not supply one so the decision log stays correlatable.
func (s *Supervisor) Route(ctx context.Context, raw domain.RawMetadata) (domain.RoutingDecision, error) {
	return s.route(ctx, raw, false)
}

// Reroute recomputes the decision for a live session after a metadata
// change and records it on the session. The previous decision is retained
// for audit; applying the new instruction to the live conversation is the
// pipeline's job, not this component's.
func (s *Supervisor) Reroute(ctx context.Context, session *domain.Session, raw domain.RawMetadata) (domain.RoutingDecision, error) {
	if raw.SessionID == "" {
		raw.SessionID = session.ID
	}

	decision, err := s.route(ctx, raw, true)
	if err != nil {
		return domain.RoutingDecision{}, err
	}

	session.Apply(decision)
	return decision, nil
}

func (s *Supervisor) route(ctx context.Context, raw domain.RawMetadata, rerouted bool) (domain.RoutingDecision, error) {
	if err := ctx.Err(); err != nil {
		return domain.RoutingDecision{}, err
	}

	metadata, err := s.validator.Validate(raw)
	if err != nil {
		return domain.RoutingDecision{}, fmt.Errorf("validate session metadata: %w", err)
	}
	if metadata.SessionID == "" {
		metadata.SessionID = uuid.NewString()
	}

	key := metadata.RouteKey()

	base, err := s.registry.Base(key.Mode)
	if err != nil {
		return domain.RoutingDecision{}, fmt.Errorf("generate base instruction: %w", err)
	}

	instruction, err := s.localizer.Localize(base, key.Language)
	if err != nil {
		return domain.RoutingDecision{}, fmt.Errorf("localize instruction: %w", err)
	}

	decision := domain.RoutingDecision{
		Key:         key,
		Instruction: instruction,
		Metadata:    metadata,
		CreatedAt:   s.clock.Now(),
	}

	s.log.RouteSelected(ports.DecisionRecord{
		Route:     key,
		SessionID: metadata.SessionID,
		Timestamp: decision.CreatedAt,
		Rerouted:  rerouted,
	})

	return decision, nil
}

// Routes lists every (mode, language) combination the supervisor can
// resolve, in policy order.
func (s *Supervisor) Routes() []domain.RouteKey {
	routes := make([]domain.RouteKey, 0, len(s.summaries))
	for _, summary := range s.summaries {
		routes = append(routes, summary.Route)
	}
	return routes
}
