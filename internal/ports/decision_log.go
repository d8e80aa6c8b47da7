package ports

import (
	"time"

	"github.com/sperrin/voiceroute/internal/domain"
)

// DecisionRecord is the one structured event emitted per routing decision.
// Operators use it to confirm mode routing behaved as expected.
type DecisionRecord struct {
	Route     domain.RouteKey
	SessionID string
	Timestamp time.Time
	Rerouted  bool
}

// DecisionLog receives one record per routing decision. Implementations
// must be safe for concurrent use; sessions are routed independently.
type DecisionLog interface {
	RouteSelected(record DecisionRecord)
}

// NopDecisionLog discards every record.
type NopDecisionLog struct{}

func (NopDecisionLog) RouteSelected(DecisionRecord) {}
