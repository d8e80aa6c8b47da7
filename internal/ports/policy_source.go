package ports

import (
	"context"

	"github.com/sperrin/voiceroute/internal/domain"
)

// PolicySource loads the routing policy the supervisor is built from.
type PolicySource interface {
	Load(ctx context.Context) (domain.RoutingPolicy, error)
	Save(ctx context.Context, policy domain.RoutingPolicy) error
}
