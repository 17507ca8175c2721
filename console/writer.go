package console

import (
	"strings"

	"github.com/rs/zerolog"
)

// Writer is a zerolog.LevelWriter that forwards each log line to the
// browser console method matching its level.
type Writer struct{}

var _ zerolog.LevelWriter = Writer{}

// NewWriter returns a console-backed log writer.
func NewWriter() Writer { return Writer{} }

// Write forwards lines without a known level to console.log.
func (w Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (Writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	switch {
	case level == zerolog.NoLevel:
		Log(line)
	case level >= zerolog.ErrorLevel:
		Error(line)
	case level == zerolog.WarnLevel:
		Warn(line)
	default:
		Log(line)
	}
	return len(p), nil
}
