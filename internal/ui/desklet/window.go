// Package desklet renders the overlay window with GTK3.
package desklet

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gdk/v3"
	"github.com/diamondburned/gotk4/pkg/gdkpixbuf/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"github.com/rs/zerolog"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/logging"
)

// ErrWindowCreationFailed is returned when GTK cannot create the window.
var ErrWindowCreationFailed = errors.New("failed to create desklet window")

// PointerHandler receives pointer events in desktop coordinates.
type PointerHandler interface {
	Active() bool
	ButtonPress(ctx context.Context, button uint, pointer entity.Point) bool
	Motion(ctx context.Context, pointer entity.Point) bool
	ButtonRelease(ctx context.Context, button uint, pointer entity.Point) bool
}

// Window is the undecorated, keep-below overlay. All methods must run on
// the GTK main thread.
type Window struct {
	win   *gtk.ApplicationWindow
	image *gtk.Image

	size      entity.Size
	origin    entity.Point
	pixbufs   map[*entity.Frame]*gdkpixbuf.Pixbuf
	destroyed bool

	logger zerolog.Logger
}

var _ port.Surface = (*Window)(nil)

// NewWindow creates the overlay sized to the first frame. It is not shown
// until Show.
func NewWindow(ctx context.Context, app *gtk.Application, size entity.Size) (*Window, error) {
	log := logging.FromContext(ctx)

	win := gtk.NewApplicationWindow(app)
	if win == nil {
		return nil, ErrWindowCreationFailed
	}

	w := &Window{
		win:     win,
		image:   gtk.NewImage(),
		size:    size,
		pixbufs: make(map[*entity.Frame]*gdkpixbuf.Pixbuf),
		logger:  log.With().Str("component", "desklet-window").Logger(),
	}

	win.SetTitle("desklet")
	win.SetAppPaintable(true)
	win.SetDecorated(false)
	win.SetSkipTaskbarHint(true)
	win.SetSkipPagerHint(true)
	win.SetKeepAbove(false)
	win.SetKeepBelow(true)
	win.SetTypeHint(gdk.WindowTypeHintDesktop)
	win.SetAcceptFocus(false)
	win.SetResizable(false)
	win.SetDefaultSize(size.W, size.H)

	if screen := gdk.ScreenGetDefault(); screen != nil {
		if visual := screen.RGBAVisual(); visual != nil {
			win.SetVisual(visual)
		} else {
			w.logger.Debug().Msg("screen has no RGBA visual, transparency disabled")
		}
	}

	win.Add(w.image)
	win.ConnectDestroy(func() {
		w.destroyed = true
	})

	return w, nil
}

// ConnectPointer routes button and motion events to h when it is active.
func (w *Window) ConnectPointer(ctx context.Context, h PointerHandler) {
	if !h.Active() {
		return
	}

	w.win.AddEvents(int(gdk.ButtonPressMask | gdk.ButtonReleaseMask | gdk.PointerMotionMask))

	w.win.ConnectButtonPressEvent(func(ev *gdk.EventButton) bool {
		return h.ButtonPress(ctx, ev.Button(), rootPoint(ev.XRoot(), ev.YRoot()))
	})
	w.win.ConnectMotionNotifyEvent(func(ev *gdk.EventMotion) bool {
		return h.Motion(ctx, rootPoint(ev.XRoot(), ev.YRoot()))
	})
	w.win.ConnectButtonReleaseEvent(func(ev *gdk.EventButton) bool {
		return h.ButtonRelease(ctx, ev.Button(), rootPoint(ev.XRoot(), ev.YRoot()))
	})
}

// ConnectDestroy runs fn when the window is destroyed by anyone.
func (w *Window) ConnectDestroy(fn func()) {
	w.win.ConnectDestroy(fn)
}

// Show moves the window to origin and maps it.
func (w *Window) Show(origin entity.Point) {
	if w.destroyed {
		return
	}
	w.Move(origin)
	w.win.ShowAll()
	w.logger.Debug().Stringer("origin", origin).Int("width", w.size.W).Int("height", w.size.H).Msg("window shown")
}

// Present displays frame. Pixbufs are built once per frame and reused on
// every later cycle.
func (w *Window) Present(frame *entity.Frame) {
	if w.destroyed || frame == nil {
		return
	}
	pb, ok := w.pixbufs[frame]
	if !ok {
		pb = gdkpixbuf.NewPixbufFromBytes(
			glib.NewBytes(frame.Pix),
			gdkpixbuf.ColorspaceRGB,
			true,
			8,
			frame.Width,
			frame.Height,
			frame.Stride,
		)
		w.pixbufs[frame] = pb
	}
	w.image.SetFromPixbuf(pb)
}

// Move repositions the window's top-left corner.
func (w *Window) Move(origin entity.Point) {
	if w.destroyed {
		return
	}
	w.origin = origin
	w.win.Move(origin.X, origin.Y)
}

// Origin returns the window position as reported by the window manager,
// falling back to the last requested position.
func (w *Window) Origin() entity.Point {
	if w.destroyed || !w.win.IsVisible() {
		return w.origin
	}
	x, y := w.win.Position()
	return entity.Point{X: x, Y: y}
}

// Destroy closes the window. Idempotent.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.pixbufs = nil
	w.win.Destroy()
	w.logger.Debug().Msg("window destroyed")
}

func rootPoint(x, y float64) entity.Point {
	return entity.Point{X: int(x), Y: int(y)}
}
