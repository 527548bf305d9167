// Package gif builds the desklet frame store from an animated image file.
package gif

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	_ "image/jpeg" // static fallbacks
	_ "image/png"
	"io"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/logging"
)

const delayUnit = 10 * time.Millisecond

// errEmptyImage rejects zero-area images; a pixbuf cannot be built from them.
var errEmptyImage = errors.New("image has no pixels")

// Decoder implements port.FrameDecoder.
type Decoder struct{}

var _ port.FrameDecoder = (*Decoder)(nil)

// NewDecoder creates a frame decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads path and materializes every frame as non-premultiplied RGBA.
// GIFs are composited over their logical screen honoring each frame's
// disposal method; other formats supported by the image registry become a
// single-frame sequence.
func (d *Decoder) Decode(ctx context.Context, path string) (*entity.FrameSequence, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDecode, err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrDecode, path, err)
	}

	var frames []*entity.Frame
	if format == "gif" {
		frames, err = decodeAnimated(ctx, bytes.NewReader(data))
	} else {
		frames, err = decodeStill(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrDecode, path, err)
	}

	seq, err := entity.NewFrameSequence(frames)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	size := seq.Size()
	log.Debug().
		Str("path", path).
		Str("format", format).
		Int("frames", seq.Len()).
		Int("width", size.W).
		Int("height", size.H).
		Dur("cycle", seq.TotalDuration()).
		Msg("decoded animation")
	return seq, nil
}

func decodeAnimated(ctx context.Context, r io.Reader) ([]*entity.Frame, error) {
	g, err := gif.DecodeAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("no frames")
	}

	screen := logicalScreen(g)
	if screen.Empty() {
		return nil, errEmptyImage
	}
	canvas := image.NewNRGBA(screen)
	frames := make([]*entity.Frame, 0, len(g.Image))

	for i, img := range g.Image {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var restore *image.NRGBA
		if disposal == gif.DisposalPrevious {
			restore = cloneNRGBA(canvas)
		}

		draw.Draw(canvas, img.Bounds(), img, img.Bounds().Min, draw.Over)

		var delay time.Duration
		if i < len(g.Delay) {
			delay = time.Duration(g.Delay[i]) * delayUnit
		}
		frames = append(frames, snapshot(canvas, delay))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = restore
		}
	}
	return frames, nil
}

func decodeStill(r io.Reader) ([]*entity.Frame, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, errEmptyImage
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Src)
	return []*entity.Frame{snapshot(canvas, 0)}, nil
}

// logicalScreen falls back to the union of frame bounds when the header
// declares no screen size.
func logicalScreen(g *gif.GIF) image.Rectangle {
	if g.Config.Width > 0 && g.Config.Height > 0 {
		return image.Rect(0, 0, g.Config.Width, g.Config.Height)
	}
	var r image.Rectangle
	for _, img := range g.Image {
		r = r.Union(img.Bounds())
	}
	return image.Rect(0, 0, r.Max.X, r.Max.Y)
}

func snapshot(canvas *image.NRGBA, delay time.Duration) *entity.Frame {
	b := canvas.Bounds()
	pix := make([]byte, len(canvas.Pix))
	copy(pix, canvas.Pix)
	return &entity.Frame{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Stride:   canvas.Stride,
		Pix:      pix,
		Duration: delay,
	}
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
