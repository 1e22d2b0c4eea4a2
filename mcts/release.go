//go:build !debug

package mcts

type lumberjack struct{}

func makeLumberJack() lumberjack { return lumberjack{} }

func (l lumberjack) log(msg string, args ...interface{}) {}

// Log returns an empty string. Build with -tags debug to record the search.
func (l lumberjack) Log() string { return "" }

func (l lumberjack) Reset() {}
