package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger from settings. The terminal frontend
// owns the tty, so it logs nowhere unless a log file is configured.
// The returned closer releases the log file, if any.
func NewLogger(s Settings) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	switch s.LogFormat {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", s.LogFormat)
	}

	var closer io.Closer = io.NopCloser(nil)
	switch {
	case s.LogFile != "":
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		closer = f
	case s.Frontend == FrontendTerminal:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stdout)
	}

	return log, closer, nil
}
