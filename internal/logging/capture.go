package logging

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

const maxCapturedLine = 1 << 20

// OutputCapture points file descriptors (stdout and stderr by default) at
// pipes and logs every line written to them. It works at the descriptor
// level, so warnings GTK and GLib print from C end up in the log file when
// no terminal is attached.
//
// The logger must not itself write to a captured descriptor.
type OutputCapture struct {
	logger  zerolog.Logger
	streams []captureStream

	mu      sync.Mutex
	wg      sync.WaitGroup
	started bool
}

type captureStream struct {
	name  string
	fd    int
	level zerolog.Level

	saved int
	read  *os.File
	write *os.File
}

// NewOutputCapture captures fd 1 at info level and fd 2 at warn level.
func NewOutputCapture(logger zerolog.Logger) *OutputCapture {
	return newOutputCapture(logger,
		captureStream{name: "stdout", fd: unix.Stdout, level: zerolog.InfoLevel},
		captureStream{name: "stderr", fd: unix.Stderr, level: zerolog.WarnLevel},
	)
}

func newOutputCapture(logger zerolog.Logger, streams ...captureStream) *OutputCapture {
	return &OutputCapture{logger: logger, streams: streams}
}

// Start redirects the descriptors. A second call is a no-op. On failure the
// descriptors already redirected are restored.
func (c *OutputCapture) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}
	for i := range c.streams {
		if err := c.redirect(&c.streams[i]); err != nil {
			c.restoreLocked(c.streams[:i])
			return fmt.Errorf("capture %s: %w", c.streams[i].name, err)
		}
	}
	c.started = true
	return nil
}

// Stop puts the original descriptors back and returns once every line
// written before the call has been logged.
func (c *OutputCapture) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}
	c.restoreLocked(c.streams)
	c.started = false
}

func (c *OutputCapture) redirect(s *captureStream) error {
	saved, err := unix.Dup(s.fd)
	if err != nil {
		return err
	}
	r, w, err := os.Pipe()
	if err != nil {
		_ = unix.Close(saved)
		return err
	}
	if err := unix.Dup3(int(w.Fd()), s.fd, 0); err != nil {
		_ = unix.Close(saved)
		_ = r.Close()
		_ = w.Close()
		return err
	}

	s.saved, s.read, s.write = saved, r, w
	c.wg.Add(1)
	go c.forward(r, s.name, s.level)
	return nil
}

// restoreLocked drops every write end so the forwarders see EOF, then waits
// for them before closing the read ends.
func (c *OutputCapture) restoreLocked(streams []captureStream) {
	for i := range streams {
		s := &streams[i]
		_ = unix.Dup3(s.saved, s.fd, 0)
		_ = unix.Close(s.saved)
		_ = s.write.Close()
	}
	c.wg.Wait()
	for i := range streams {
		_ = streams[i].read.Close()
	}
}

func (c *OutputCapture) forward(r io.Reader, stream string, level zerolog.Level) {
	defer c.wg.Done()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxCapturedLine)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		c.logger.WithLevel(level).Str("stream", stream).Msg(line)
	}
	if err := sc.Err(); err != nil {
		c.logger.Warn().Err(err).Str("stream", stream).Msg("output capture stopped parsing lines")
		// Keep the pipe drained so writers never block.
		_, _ = io.Copy(io.Discard, r)
	}
}
