//go:build debug

package mcts

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog"
)

type lumberjack struct {
	*bytes.Buffer
	logger zerolog.Logger
}

func makeLumberJack() lumberjack {
	buf := new(bytes.Buffer)
	return lumberjack{
		Buffer: buf,
		logger: zerolog.New(buf).Level(zerolog.DebugLevel),
	}
}

func (l *lumberjack) log(msg string, args ...interface{}) {
	l.logger.Debug().Msg(fmt.Sprintf(msg, args...))
}

func (l *lumberjack) Reset() { l.Buffer.Reset() }

// Log returns everything the search has recorded so far.
func (l *lumberjack) Log() string { return l.String() }
