// Package logging builds the zap logger used by the command.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level selects how much the console logger prints.
type Level int

const (
	LevelQuiet   Level = iota // nothing
	LevelNormal               // warnings and errors
	LevelVerbose              // everything, per-file progress included
)

// ResolveLevel maps the --quiet and --verbose flags to a level. Quiet wins.
func ResolveLevel(quiet, verbose bool) Level {
	switch {
	case quiet:
		return LevelQuiet
	case verbose:
		return LevelVerbose
	default:
		return LevelNormal
	}
}

// New returns a console logger writing to w. Colored level names and
// no timestamps are used when color is set.
func New(w io.Writer, level Level, color bool) *zap.Logger {
	if level == LevelQuiet {
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	threshold := zapcore.WarnLevel
	if level == LevelVerbose {
		threshold = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= threshold
		}))
	return zap.New(core)
}
