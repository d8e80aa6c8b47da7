// Package zaplog emits the per-decision observability record over zap.
package zaplog

import (
	"github.com/sperrin/voiceroute/internal/ports"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type DecisionLog struct {
	logger *zap.Logger
}

var _ ports.DecisionLog = (*DecisionLog)(nil)

func New(logger *zap.Logger) *DecisionLog {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DecisionLog{logger: logger}
}

// RouteSelected writes the one structured record operators use to confirm
// mode routing behaved as expected.
func (l *DecisionLog) RouteSelected(record ports.DecisionRecord) {
	l.logger.Info("route selected",
		zap.String("route", record.Route.String()),
		zap.String("mode", string(record.Route.Mode)),
		zap.String("language", string(record.Route.Language)),
		zap.String("session_id", record.SessionID),
		zap.Time("timestamp", record.Timestamp),
		zap.Bool("rerouted", record.Rerouted),
	)
}

// NewLogger builds the process logger used by the CLI and the HTTP server.
func NewLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}
