package mcts

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestArgmax(t *testing.T) {
	nan := math32.NaN()
	inf := math32.Inf(1)
	cases := []struct {
		name string
		in   []float32
		want int
	}{
		{"empty", nil, -1},
		{"single", []float32{1}, 0},
		{"max", []float32{1, 3, 2}, 1},
		{"last tie", []float32{3, 1, 3}, 2},
		{"nan beats inf", []float32{inf, nan, inf}, 1},
		{"last nan", []float32{nan, 1, nan}, 2},
		{"all neg inf", []float32{math32.Inf(-1), math32.Inf(-1)}, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, argmax(c.in), c.name)
	}
}

func TestGeq(t *testing.T) {
	assert := assert.New(t)
	nan := math32.NaN()
	assert.True(geq(nan, nan))
	assert.True(geq(nan, math32.Inf(1)))
	assert.False(geq(math32.Inf(1), nan))
	assert.True(geq(2, 2))
	assert.False(geq(1, 2))
}
