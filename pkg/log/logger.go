// Package log provides named, leveled loggers for the renderer and the CLI.
// All output goes to a single sink, stderr by default, so that stdout stays
// free for PPM images.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging verbosity, from Debug (most verbose) to Error
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// Lines look like "[15:04:05.000] [renderer] [NOTICE] rendered 40 samples in 2ms"
var format = logging.MustStringFormatter(
	`[%{time:15:04:05.000}] [%{module}] [%{level}] %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the subset of *logging.Logger used across the module
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a logger tagged with the given module name, e.g. "renderer".
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink sends all log output to sink and resets the level to Notice.
func SetSink(sink io.Writer) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(backend)
	leveledBackend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel changes the verbosity of every logger. The CLI maps -v to Info
// and -vv to Debug. Unknown levels are ignored.
func SetLevel(level Level) {
	if backendLevel, ok := backendLevels[level]; ok {
		leveledBackend.SetLevel(backendLevel, "")
	}
}

func init() {
	SetSink(os.Stderr)
}
