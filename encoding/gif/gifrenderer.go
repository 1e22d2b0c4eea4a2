package gif

import (
	"image/gif"
	"io"

	"github.com/gorgonia/uct/encoding"
	"github.com/gorgonia/uct/game"
	"github.com/pkg/errors"
)

// Encoder collects one frame per move and writes them as an animated gif on Flush.
// It satisfies uct.OutputEncoder.
type Encoder struct {
	*encoding.Renderer
	io.Writer

	out *gif.GIF
}

// NewGifEncoder with height and width
func NewGifEncoder(h, w int) *Encoder {
	return &Encoder{
		Renderer: encoding.NewRenderer(h, w),
		out:      &gif.GIF{LoopCount: -1},
	}
}

// Encode a game
func (enc *Encoder) Encode(ms game.MetaState) error {
	im, ended := enc.Render(ms)
	var delay int
	if ended {
		delay = 300
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Frames returns how many frames have been encoded so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if enc.Writer == nil {
		return errors.New("gif encoder has no writer")
	}
	if len(enc.out.Image) == 0 {
		return errors.New("no frames to write")
	}
	return errors.WithStack(gif.EncodeAll(enc.Writer, enc.out))
}
