package main

import (
	"runtime"

	"github.com/bnema/desklet/internal/cli/cmd"
	"github.com/bnema/desklet/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must run on the thread that started the process; `desklet run`
	// reaches the GTK main loop from this goroutine.
	runtime.LockOSThread()
}

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
