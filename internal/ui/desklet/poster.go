package desklet

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/desklet/internal/ui/mainloop"
)

// IdlePoster schedules work on the GTK main loop.
var IdlePoster = mainloop.PostFunc(func(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
})
