package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"proctiller/internal/config"
)

// configureLogger applies the log section of the configuration to logger.
// Text output is colored only when out is a terminal.
func configureLogger(logger *logrus.Logger, cfg config.Log, out io.Writer) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	logger.SetOutput(out)
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		formatter := &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		}
		if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
			formatter.DisableColors = true
		}
		logger.SetFormatter(formatter)
	}
	return nil
}
