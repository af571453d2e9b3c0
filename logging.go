package datagrid

import (
	"log/slog"
	"os"
)

// gridLogLevel controls the log level for grid debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var gridLogLevel = new(slog.LevelVar)

// gridLogger is shared by every Grid in the process.
var gridLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gridLogLevel}))

// SetVerbose enables or disables verbose/debug logging for grid components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		gridLogLevel.Set(slog.LevelDebug)
	} else {
		gridLogLevel.Set(slog.LevelInfo)
	}
}

// SetLogger replaces the package logger. Passing nil restores the stderr logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gridLogLevel}))
	}
	gridLogger = l
}
