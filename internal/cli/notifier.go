package cli

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/corpac/coba/internal/controller"
)

// ConsoleNotifier prints controller notifications as human readable log
// lines.
type ConsoleNotifier struct {
	logger zerolog.Logger
}

func NewConsoleNotifier(w io.Writer, color bool) *ConsoleNotifier {
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !color,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return &ConsoleNotifier{logger: zerolog.New(out)}
}

func (n *ConsoleNotifier) Notify(level controller.Level, message string) {
	switch level {
	case controller.LevelError:
		n.logger.Error().Msg(message)
	case controller.LevelSuccess:
		n.logger.Info().Bool("ok", true).Msg(message)
	default:
		n.logger.Info().Msg(message)
	}
}
