// Package log provides structured logging with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/reelroll-cli/reelroll/filesystem"
	"github.com/reelroll-cli/reelroll/key"
	"github.com/reelroll-cli/reelroll/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var enabled bool

// Fields is a set of structured context attached to a log line.
type Fields = logrus.Fields

// Setup opens today's log file and configures format and level.
// If logging is disabled, every emission is discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	configure(f)
	return nil
}

// SetOutput enables logging to w with the configured format and level.
func SetOutput(w io.Writer) {
	enabled = true
	configure(w)
}

// Enabled reports whether log lines are written anywhere.
func Enabled() bool {
	return enabled
}

func configure(w io.Writer) {
	logrus.SetOutput(w)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// Entry is a log line under construction. A nil *Entry discards everything.
type Entry struct {
	entry *logrus.Entry
}

// WithFields attaches structured context to the next log line.
func WithFields(fields Fields) *Entry {
	if !enabled {
		return nil
	}
	return &Entry{entry: logrus.WithFields(fields)}
}

func (e *Entry) Infof(format string, args ...interface{}) {
	if e != nil {
		e.entry.Infof(format, args...)
	}
}

func (e *Entry) Warnf(format string, args ...interface{}) {
	if e != nil {
		e.entry.Warnf(format, args...)
	}
}

func (e *Entry) Errorf(format string, args ...interface{}) {
	if e != nil {
		e.entry.Errorf(format, args...)
	}
}

func (e *Entry) Debugf(format string, args ...interface{}) {
	if e != nil {
		e.entry.Debugf(format, args...)
	}
}

// Severity-specific emissions, proxied to logrus when logging is enabled.

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...interface{}) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
