package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// LogOptions holds the global logging flags.
type LogOptions struct {
	Level  string
	Format string
}

func configureLogging(opts *LogOptions) error {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("invalid log-level: %w", err)
	}

	switch opts.Format {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log-format %q (use text or json)", opts.Format)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)
	return nil
}
