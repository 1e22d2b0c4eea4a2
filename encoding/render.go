// Package encoding draws game states as images for the output encoders.
package encoding

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/uct/game"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Epoch 100000, Game Number: 10000`
	extraLines      = 3 // game name, epoch and game number, winner
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

// Palette is black on (nearly) white.
var Palette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Renderer draws a game.MetaState as text on a paletted image. The frame size is
// fixed by the first state drawn, and capped at the maximum given.
type Renderer struct {
	H, W int
	font.Drawer

	maxH, maxW  int // maxHeight and maxWidth
	padH, padW  int // padding so everything don't start at the topleft
	dy          int
	initialized bool
}

// NewRenderer with maximum height and width
func NewRenderer(h, w int) *Renderer {
	return &Renderer{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,
		dy:   int(math.Ceil(fontsize * lineheight * dpi / 72)),
		Drawer: font.Drawer{
			Src: image.Black,
		},
	}
}

func (r *Renderer) init(repr string) {
	r.Face = truetype.NewFace(regular, &truetype.Options{
		Size:    fontsize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	// first calculate how long the max length will be
	splits := strings.Split(repr, "\n")
	var maxW int
	for _, line := range append(splits, dummyLongString) {
		if l := font.MeasureString(r.Face, line).Ceil(); l > maxW {
			maxW = l
		}
	}
	w := maxW + 2*r.padW
	h := (len(splits)+extraLines)*r.dy + 2*r.padH

	if w >= r.maxW {
		w = r.maxW
		r.padW = 0
	}
	if h >= r.maxH {
		h = r.maxH
		r.padH = 0
	}
	r.H = h
	r.W = w
	r.initialized = true
}

// Render draws the board, the name of the game, its number and, once decided, the
// winner. It reports whether the game has ended.
func (r *Renderer) Render(ms game.MetaState) (im *image.Paletted, ended bool) {
	g := ms.State()
	repr := strings.TrimRight(fmt.Sprintf("%s", g), "\n")
	if !r.initialized {
		r.init(repr)
	}

	im = image.NewPaletted(image.Rect(0, 0, r.W, r.H), Palette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	r.Dst = im

	y := r.padH + r.dy
	line := func(s string) {
		r.Dot = fixed.P(r.padW, y)
		r.DrawString(s)
		y += r.dy
	}
	for _, s := range strings.Split(repr, "\n") {
		line(s)
	}
	line(ms.Name())
	line(fmt.Sprintf("Epoch %d, Game Number: %d", ms.Epoch(), ms.GameNumber()))

	ended, winner := g.Ended()
	switch {
	case !ended:
	case winner == game.Player(game.None):
		line("Draw")
	default:
		line(fmt.Sprintf("Winner: %s", winner))
	}
	return im, ended
}
