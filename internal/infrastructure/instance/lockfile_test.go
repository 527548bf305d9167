package instance

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/desklet/internal/domain/entity"
)

func lockPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "run", "desklet.lock")
}

func writeRecord(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// deadPID returns the pid of a child that has already been reaped.
func deadPID(t *testing.T) int {
	t.Helper()
	cmd := exec.Command("true")
	require.NoError(t, cmd.Run())
	return cmd.Process.Pid
}

// startChild runs a long-lived process and reaps it in the background so
// it does not linger as a zombie once signalled.
func startChild(t *testing.T, script string) int {
	t.Helper()
	cmd := exec.Command("sh", "-c", script)
	require.NoError(t, cmd.Start())
	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		<-done
	})
	return cmd.Process.Pid
}

func TestAcquire_WritesPIDAndReleaseRemoves(t *testing.T) {
	ctx := context.Background()
	path := lockPath(t)
	lock := NewLock(path)

	require.NoError(t, lock.Acquire(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data), "content is exactly the decimal pid")

	require.NoError(t, lock.Release(ctx))
	assert.NoFileExists(t, path)

	// Idempotent.
	require.NoError(t, lock.Release(ctx))
}

func TestAcquire_TwiceOnSameLock(t *testing.T) {
	ctx := context.Background()
	lock := NewLock(lockPath(t))
	require.NoError(t, lock.Acquire(ctx))
	t.Cleanup(func() { _ = lock.Release(ctx) })

	err := lock.Acquire(ctx)
	require.ErrorIs(t, err, entity.ErrAlreadyRunning)
}

func TestAcquire_FlockConflict(t *testing.T) {
	ctx := context.Background()
	path := lockPath(t)

	first := NewLock(path)
	require.NoError(t, first.Acquire(ctx))
	t.Cleanup(func() { _ = first.Release(ctx) })

	second := NewLock(path, WithPID(os.Getpid()+1))
	err := second.Acquire(ctx)
	require.ErrorIs(t, err, entity.ErrAlreadyRunning)

	// The loser must not have touched the record.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data), "content is exactly the decimal pid")
}

func TestAcquire_LiveForeignPID(t *testing.T) {
	ctx := context.Background()
	path := lockPath(t)
	writeRecord(t, path, "4242\n")

	lock := NewLock(path, WithLivenessProbe(func(_ context.Context, pid int) bool {
		return pid == 4242
	}))
	err := lock.Acquire(ctx)
	require.ErrorIs(t, err, entity.ErrAlreadyRunning)
	assert.FileExists(t, path)
}

func TestAcquire_ReplacesStaleRecord(t *testing.T) {
	ctx := context.Background()
	path := lockPath(t)
	writeRecord(t, path, strconv.Itoa(deadPID(t))+"\n")

	lock := NewLock(path)
	require.NoError(t, lock.Acquire(ctx))
	t.Cleanup(func() { _ = lock.Release(ctx) })

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data), "content is exactly the decimal pid")
}

func TestAcquire_ReplacesMalformedRecord(t *testing.T) {
	ctx := context.Background()
	path := lockPath(t)
	writeRecord(t, path, "not-a-pid")

	lock := NewLock(path)
	require.NoError(t, lock.Acquire(ctx))
	require.NoError(t, lock.Release(ctx))
}

func TestRelease_LeavesForeignRecord(t *testing.T) {
	ctx := context.Background()
	path := lockPath(t)
	writeRecord(t, path, "4242\n")

	require.NoError(t, NewLock(path).Release(ctx))
	assert.FileExists(t, path)
}

func TestStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("no record", func(t *testing.T) {
		path := lockPath(t)
		st, err := NewLock(path).Status(ctx)
		require.NoError(t, err)
		assert.False(t, st.Running)
		assert.False(t, st.StaleRemoved)
		assert.Equal(t, path, st.LockPath)
	})

	t.Run("live owner", func(t *testing.T) {
		path := lockPath(t)
		pid := startChild(t, "exec sleep 30")
		writeRecord(t, path, strconv.Itoa(pid)+"\n")

		st, err := NewLock(path).Status(ctx)
		require.NoError(t, err)
		assert.True(t, st.Running)
		assert.Equal(t, pid, st.PID)
		assert.FileExists(t, path)
	})

	t.Run("dead owner is cleaned", func(t *testing.T) {
		path := lockPath(t)
		pid := deadPID(t)
		writeRecord(t, path, strconv.Itoa(pid)+"\n")

		st, err := NewLock(path).Status(ctx)
		require.NoError(t, err)
		assert.False(t, st.Running)
		assert.True(t, st.StaleRemoved)
		assert.Equal(t, pid, st.PID)
		assert.NoFileExists(t, path)
	})

	t.Run("garbage is cleaned", func(t *testing.T) {
		path := lockPath(t)
		writeRecord(t, path, "garbage")

		st, err := NewLock(path).Status(ctx)
		require.NoError(t, err)
		assert.False(t, st.Running)
		assert.True(t, st.StaleRemoved)
		assert.NoFileExists(t, path)
	})

	t.Run("flock held keeps record", func(t *testing.T) {
		path := lockPath(t)
		owner := NewLock(path)
		require.NoError(t, owner.Acquire(ctx))
		t.Cleanup(func() { _ = owner.Release(ctx) })

		// Pretend the owner's pid looks dead; the held flock must still win.
		probe := NewLock(path, WithLivenessProbe(func(context.Context, int) bool { return false }))
		st, err := probe.Status(ctx)
		require.NoError(t, err)
		assert.False(t, st.StaleRemoved)
		assert.FileExists(t, path)
	})
}

func TestStop_NotRunning(t *testing.T) {
	require.NoError(t, NewLock(lockPath(t)).Stop(context.Background(), time.Second))
}

func TestStop_RefusesOwnProcess(t *testing.T) {
	path := lockPath(t)
	writeRecord(t, path, strconv.Itoa(os.Getpid())+"\n")

	err := NewLock(path).Stop(context.Background(), time.Second)
	require.Error(t, err)
	assert.FileExists(t, path)
}

func TestStop_TerminatesOwner(t *testing.T) {
	path := lockPath(t)
	pid := startChild(t, "exec sleep 30")
	writeRecord(t, path, strconv.Itoa(pid)+"\n")

	lock := NewLock(path, WithPollInterval(20*time.Millisecond))
	require.NoError(t, lock.Stop(context.Background(), 5*time.Second))
	assert.NoFileExists(t, path)

	st, err := lock.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, st.Running)
}

func TestStop_TimesOutWithoutKilling(t *testing.T) {
	path := lockPath(t)
	pid := startChild(t, "trap '' TERM; exec sleep 30")
	writeRecord(t, path, strconv.Itoa(pid)+"\n")

	// Give the shell time to install the trap before exec.
	time.Sleep(100 * time.Millisecond)

	lock := NewLock(path, WithPollInterval(20*time.Millisecond))
	start := time.Now()
	err := lock.Stop(context.Background(), 300*time.Millisecond)
	require.ErrorIs(t, err, entity.ErrStopTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond)

	st, err := lock.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Running, "process must survive a timed-out stop")
}

func TestStop_ContextCancelled(t *testing.T) {
	path := lockPath(t)
	writeRecord(t, path, "4242\n")

	lock := NewLock(path, WithLivenessProbe(func(context.Context, int) bool { return true }))
	lock.signal = func(int) error { return nil }

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := lock.Stop(ctx, 5*time.Second)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
