package mjpeg

import (
	"bytes"
	"image/jpeg"
	"net/http"

	"github.com/gorgonia/uct/encoding"
	"github.com/gorgonia/uct/game"
	"github.com/mattn/go-mjpeg"
	"github.com/pkg/errors"
)

// Encoder pushes every state it is given to a motion jpeg stream served over HTTP.
type Encoder struct {
	*encoding.Renderer

	stream *mjpeg.Stream
}

func (e *Encoder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.stream.ServeHTTP(w, r)
}

// NewEncoder with height and width
func NewEncoder(h, w int) *Encoder {
	return &Encoder{
		Renderer: encoding.NewRenderer(h, w),
		stream:   mjpeg.NewStream(),
	}
}

// Encode a game
func (enc *Encoder) Encode(ms game.MetaState) error {
	im, _ := enc.Render(ms)
	var b bytes.Buffer
	if err := jpeg.Encode(&b, im, nil); err != nil {
		return errors.WithMessage(err, "encoding frame")
	}
	if err := enc.stream.Update(b.Bytes()); err != nil {
		return errors.WithMessage(err, "updating stream")
	}
	return nil
}

func (enc *Encoder) Flush() error { return nil }
