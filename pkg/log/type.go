package log

import (
	"io"

	"go.uber.org/zap"
)

// ZapConfig holds configuration for the Zap logger.
// Level accepts any zap level name; unknown names fall back to info.
// Output defaults to stderr.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	Output       io.Writer
}

type zapLogger struct {
	s *zap.SugaredLogger
}
