// Package instance implements the single-instance lock shared by the
// overlay process and the controller commands.
package instance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/unix"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/logging"
)

const (
	lockDirPerm  = 0o755
	lockFilePerm = 0o644

	// DefaultStopTimeout bounds how long Stop waits for the owner to exit.
	DefaultStopTimeout = 1500 * time.Millisecond

	defaultPollInterval = 100 * time.Millisecond
)

// Lock is a pid lock file guarded by an advisory flock. The flock closes
// the window between reading a stale pid and writing ours; the pid record
// is what controllers read.
type Lock struct {
	path string
	pid  int

	alive        func(ctx context.Context, pid int) bool
	signal       func(pid int) error
	pollInterval time.Duration

	mu   sync.Mutex
	file *os.File
}

var (
	_ port.InstanceGuard      = (*Lock)(nil)
	_ port.InstanceController = (*Lock)(nil)
)

// Option configures a Lock.
type Option func(*Lock)

// WithPID overrides the pid recorded as owner.
func WithPID(pid int) Option {
	return func(l *Lock) { l.pid = pid }
}

// WithLivenessProbe replaces the process liveness check.
func WithLivenessProbe(fn func(ctx context.Context, pid int) bool) Option {
	return func(l *Lock) { l.alive = fn }
}

// WithPollInterval sets how often Stop re-checks the owner while waiting.
func WithPollInterval(d time.Duration) Option {
	return func(l *Lock) {
		if d > 0 {
			l.pollInterval = d
		}
	}
}

// NewLock creates a lock bound to path. Nothing touches the filesystem
// until Acquire, Status or Stop is called.
func NewLock(path string, opts ...Option) *Lock {
	l := &Lock{
		path:         path,
		pid:          os.Getpid(),
		alive:        processAlive,
		signal:       terminate,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Acquire records this process as the owner. A live foreign owner yields
// entity.ErrAlreadyRunning; a stale record is overwritten in place.
func (l *Lock) Acquire(ctx context.Context) error {
	log := logging.FromContext(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return fmt.Errorf("%w: lock already held by pid %d", entity.ErrAlreadyRunning, l.pid)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), lockDirPerm); err != nil {
		return fmt.Errorf("create lock dir: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, lockFilePerm)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}

	locked, err := tryFlock(f)
	switch {
	case err != nil:
		// Some filesystems refuse flock; the pid record still works.
		log.Warn().Err(err).Str("path", l.path).Msg("advisory lock unavailable, relying on pid record")
	case !locked:
		owner, _ := readPID(f)
		_ = f.Close()
		return fmt.Errorf("%w: pid %d holds %s", entity.ErrAlreadyRunning, owner, l.path)
	}

	owner, readErr := readPID(f)
	if readErr == nil && owner != l.pid {
		if l.alive(ctx, owner) {
			_ = unlockAndClose(f)
			return fmt.Errorf("%w: pid %d holds %s", entity.ErrAlreadyRunning, owner, l.path)
		}
		log.Info().Int("stale_pid", owner).Str("path", l.path).Msg("replacing stale instance lock")
	}

	if err := writePID(f, l.pid); err != nil {
		_ = unlockAndClose(f)
		return fmt.Errorf("write lock file: %w", err)
	}

	l.file = f
	log.Debug().Int("pid", l.pid).Str("path", l.path).Msg("instance lock acquired")
	return nil
}

// Release removes the record if this process owns it. Safe to call more
// than once and without a prior Acquire.
func (l *Lock) Release(ctx context.Context) error {
	log := logging.FromContext(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		pid, err := readPIDFile(l.path)
		if err != nil || pid != l.pid {
			return nil
		}
		return removeIfExists(l.path)
	}

	// Remove before unlocking so a waiting starter never sees our pid
	// without the flock.
	removeErr := removeIfExists(l.path)
	closeErr := unlockAndClose(l.file)
	l.file = nil

	log.Debug().Int("pid", l.pid).Str("path", l.path).Msg("instance lock released")
	return errors.Join(removeErr, closeErr)
}

// Status reports whether a live process owns the lock. Stale records are
// deleted unless another process is still holding the flock, which means
// it is mid-acquire.
func (l *Lock) Status(ctx context.Context) (*port.InstanceStatus, error) {
	status := &port.InstanceStatus{LockPath: l.path}

	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return status, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read lock file: %w", err)
	}

	pid, parseErr := parsePID(data)
	if parseErr == nil {
		status.PID = pid
		if l.alive(ctx, pid) {
			status.Running = true
			return status, nil
		}
	}

	status.StaleRemoved = l.removeStale(ctx)
	return status, nil
}

// Stop sends SIGTERM to the owner and waits until it is gone. It never
// escalates to SIGKILL; a survivor yields entity.ErrStopTimeout.
func (l *Lock) Stop(ctx context.Context, timeout time.Duration) error {
	log := logging.FromContext(ctx)

	if timeout <= 0 {
		timeout = DefaultStopTimeout
	}

	status, err := l.Status(ctx)
	if err != nil {
		return err
	}
	if !status.Running {
		return nil
	}
	if status.PID == os.Getpid() {
		return fmt.Errorf("refusing to signal own process (pid %d)", status.PID)
	}

	log.Debug().Int("pid", status.PID).Dur("timeout", timeout).Msg("sending SIGTERM to desklet")
	if err := l.signal(status.PID); err != nil {
		if errors.Is(err, unix.ESRCH) {
			l.removeStale(ctx)
			return nil
		}
		return fmt.Errorf("signal pid %d: %w", status.PID, err)
	}

	return l.waitGone(ctx, status.PID, timeout)
}

func (l *Lock) waitGone(ctx context.Context, pid int, timeout time.Duration) error {
	log := logging.FromContext(ctx)

	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Debug().Err(err).Msg("fsnotify unavailable, polling lock file")
	} else {
		defer watcher.Close()
		if err := watcher.Add(filepath.Dir(l.path)); err != nil {
			log.Debug().Err(err).Msg("cannot watch lock dir, polling lock file")
		} else {
			events = watcher.Events
			errs = watcher.Errors
		}
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		if l.gone(ctx, pid) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			if l.gone(ctx, pid) {
				return nil
			}
			return fmt.Errorf("%w: pid %d still alive after %s", entity.ErrStopTimeout, pid, timeout)
		case <-ticker.C:
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			log.Trace().Str("event", ev.String()).Msg("lock dir changed")
		case werr, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Debug().Err(werr).Msg("lock dir watch error")
		}
	}
}

// gone is true once the record is deleted or its owner died.
func (l *Lock) gone(ctx context.Context, pid int) bool {
	owner, err := readPIDFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	if err == nil && owner != pid {
		// Replaced by a new instance; ours is gone.
		return true
	}
	if l.alive(ctx, pid) {
		return false
	}
	l.removeStale(ctx)
	return true
}

func (l *Lock) removeStale(ctx context.Context) bool {
	f, err := os.OpenFile(l.path, os.O_RDWR, 0)
	if err != nil {
		return false
	}
	defer func() { _ = unlockAndClose(f) }()

	if locked, err := tryFlock(f); err == nil && !locked {
		return false
	}
	if err := os.Remove(l.path); err != nil {
		return false
	}
	logging.FromContext(ctx).Info().Str("path", l.path).Msg("removed stale instance lock")
	return true
}

func processAlive(ctx context.Context, pid int) bool {
	if pid <= 0 {
		return false
	}
	ok, err := process.PidExistsWithContext(ctx, int32(pid))
	return err == nil && ok
}

func terminate(pid int) error {
	return unix.Kill(pid, unix.SIGTERM)
}

func tryFlock(f *os.File) (bool, error) {
	err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, unix.EWOULDBLOCK) {
		return false, nil
	}
	return false, err
}

func unlockAndClose(f *os.File) error {
	if f == nil {
		return nil
	}
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	return f.Close()
}

func readPID(f *os.File) (int, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return 0, err
	}
	return parsePID(data)
}

func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return parsePID(data)
}

func parsePID(data []byte) (int, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, errors.New("empty lock file")
	}
	pid, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("malformed pid %q: %w", text, err)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("invalid pid %d", pid)
	}
	return pid, nil
}

// writePID replaces the content with the bare decimal pid, no trailing
// newline. It truncates in place rather than deleting, so the flock stays on
// the inode other processes open.
func writePID(f *os.File, pid int) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := f.WriteString(strconv.Itoa(pid)); err != nil {
		return err
	}
	return f.Sync()
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
