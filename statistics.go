package uct

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Statistics records, per agent, the cumulative results after every game.
type Statistics struct {
	Creation []string
	Wins     map[string][]float32
	Losses   map[string][]float32
	Draws    map[string][]float32
}

func makeStatistics() Statistics {
	return Statistics{
		Creation: make([]string, 0, 2),
		Wins:     make(map[string][]float32),
		Losses:   make(map[string][]float32),
		Draws:    make(map[string][]float32),
	}
}

func (s *Statistics) update(name string, wins, losses, draws float32) {
	if _, ok := s.Wins[name]; !ok {
		s.Creation = append(s.Creation, name)
	}

	s.Wins[name] = append(s.Wins[name], wins)
	s.Losses[name] = append(s.Losses[name], losses)
	s.Draws[name] = append(s.Draws[name], draws)
}

// WinRate returns the win rate of the named agent after the i-th recorded game.
func (s *Statistics) WinRate(name string, i int) float32 {
	win := s.Wins[name][i]
	total := win + s.Losses[name][i] + s.Draws[name][i]
	if total == 0 {
		return 0
	}
	return win / total
}

// Dump writes the win rates as CSV: one column per agent, one row per game.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(s.Creation); err != nil {
		return errors.WithMessage(err, "writing header")
	}
	var games int
	for _, agent := range s.Creation {
		if l := len(s.Wins[agent]); l > games {
			games = l
		}
	}
	records := make([][]string, games)
	for j := range records {
		record := make([]string, len(s.Creation))
		for i, agent := range s.Creation {
			if j < len(s.Wins[agent]) {
				record[i] = strconv.FormatFloat(float64(s.WinRate(agent, j)), 'f', 3, 32)
			}
		}
		records[j] = record
	}
	if err := w.WriteAll(records); err != nil {
		return errors.WithMessage(err, "writing records")
	}
	return errors.WithStack(f.Sync())
}
