package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures level and output. When file is set, logs go to stdout and
// to a rotated file.
func Init(level, file string) {
	Log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	var out io.Writer = os.Stdout
	if file != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}
	Log.SetOutput(out)
}

// WithStore returns an entry tagged with the store id.
func WithStore(storeID string) *logrus.Entry {
	return Log.WithField("store_id", storeID)
}
