//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=diagnostics.go -destination=mock_diagnostics.gen.go -package=report
package report

import "go.uber.org/zap"

// DiagnosticsSink receives the failure cause of each unresolved
// dependency. It is a side channel: nothing recorded here appears in
// the report text.
type DiagnosticsSink interface {
	// Record reports the cause of an unresolved dependency.
	Record(key DependencyKey, cause error)
}

// zapDiagnostics logs unresolved-dependency causes at info level.
type zapDiagnostics struct {
	logger *zap.Logger
}

// NewZapDiagnostics creates a DiagnosticsSink backed by the given
// zap logger.
func NewZapDiagnostics(logger *zap.Logger) DiagnosticsSink {
	return &zapDiagnostics{logger: logger}
}

func (d *zapDiagnostics) Record(key DependencyKey, cause error) {
	d.logger.Info("Failed to determine the latest version",
		zap.String("dependency", key.Label()),
		zap.Error(cause),
	)
}

// nopDiagnostics discards all records.
type nopDiagnostics struct{}

func (nopDiagnostics) Record(DependencyKey, error) {}
