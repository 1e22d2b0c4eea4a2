package encoding

import (
	"testing"

	"github.com/gorgonia/uct/game"
	"github.com/gorgonia/uct/game/mnk"
	"github.com/stretchr/testify/assert"
)

type meta struct{ g game.State }

func (m meta) Name() string                { return "Tic Tac Toe" }
func (m meta) Epoch() int                  { return 0 }
func (m meta) GameNumber() int             { return 1 }
func (m meta) Score(a game.Player) float64 { return 0 }
func (m meta) State() game.State           { return m.g }

func TestRender(t *testing.T) {
	assert := assert.New(t)
	r := NewRenderer(600, 600)
	g := mnk.TicTacToe(mnk.WithSeed(1)).ExecMove(4)

	im, ended := r.Render(meta{g})
	assert.False(ended)
	assert.True(r.W > 0 && r.W <= 600)
	assert.True(r.H > 0 && r.H <= 600)
	assert.Equal(r.W, im.Bounds().Dx())
	assert.Equal(r.H, im.Bounds().Dy())

	// something got drawn
	var black int
	for _, px := range im.Pix {
		if px == 0 {
			black++
		}
	}
	assert.NotZero(black)

	// the frame size is fixed by the first render
	won := g.ExecMove(0).ExecMove(3).ExecMove(1).ExecMove(5)
	im2, ended := r.Render(meta{won})
	assert.True(ended)
	assert.Equal(im.Bounds(), im2.Bounds())
}

func TestRenderCapped(t *testing.T) {
	r := NewRenderer(20, 30)
	im, _ := r.Render(meta{mnk.TicTacToe()})
	assert.Equal(t, 30, im.Bounds().Dx())
	assert.Equal(t, 20, im.Bounds().Dy())
}
