package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sperrin/voiceroute/internal/adapters/log/zaplog"
	"github.com/sperrin/voiceroute/internal/adapters/pipeline"
	policytoml "github.com/sperrin/voiceroute/internal/adapters/policy/toml"
	"github.com/sperrin/voiceroute/internal/application"
	"github.com/sperrin/voiceroute/internal/domain"
	"github.com/sperrin/voiceroute/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	source      *policytoml.Source
	logger      *zap.Logger
	decisionLog ports.DecisionLog
	listenAddr  string
}

func wireApp() (*app, error) {
	source, err := policytoml.NewSource(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire policy source: %w", err)
	}

	logger, err := zaplog.NewLogger(os.Getenv("VOICEROUTE_DEBUG") != "")
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	return &app{
		source:      source,
		logger:      logger,
		decisionLog: zaplog.New(logger),
		listenAddr:  envOrDefault("VOICEROUTE_LISTEN", "127.0.0.1:8321"),
	}, nil
}

// buildSupervisor loads the policy and constructs the routing components.
// Registry completeness is verified here, so any command that routes
// sessions fails before accepting one when the policy has drifted.
func (a *app) buildSupervisor(ctx context.Context) (*application.Supervisor, domain.RoutingPolicy, error) {
	policy, err := a.source.Load(ctx)
	if err != nil {
		return nil, domain.RoutingPolicy{}, fmt.Errorf("load routing policy: %w", err)
	}

	supervisor, err := application.NewSupervisor(policy, a.decisionLog, ports.SystemClock{})
	if err != nil {
		return nil, domain.RoutingPolicy{}, fmt.Errorf("build supervisor: %w", err)
	}

	return supervisor, policy, nil
}

func (a *app) profileBuilder(policy domain.RoutingPolicy) *pipeline.Builder {
	return pipeline.NewBuilder(policy.Pipeline)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
