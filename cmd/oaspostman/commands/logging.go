package commands

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/erraggy/oaspostman/parser"
)

// newLogger builds the CLI logger: JSON to stderr at warn level, or debug
// level when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// ZapAdapter wraps a zap.Logger to implement parser.Logger.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter creates a new ZapAdapter wrapping the given zap.Logger.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	return &ZapAdapter{logger: logger.Sugar()}
}

// Debug logs at debug level.
func (z *ZapAdapter) Debug(msg string, attrs ...any) {
	z.logger.Debugw(msg, attrs...)
}

// Info logs at info level.
func (z *ZapAdapter) Info(msg string, attrs ...any) {
	z.logger.Infow(msg, attrs...)
}

// Warn logs at warn level.
func (z *ZapAdapter) Warn(msg string, attrs ...any) {
	z.logger.Warnw(msg, attrs...)
}

// Error logs at error level.
func (z *ZapAdapter) Error(msg string, attrs ...any) {
	z.logger.Errorw(msg, attrs...)
}

// With returns a new Logger with the given attributes.
func (z *ZapAdapter) With(attrs ...any) parser.Logger {
	return &ZapAdapter{logger: z.logger.With(attrs...)}
}
