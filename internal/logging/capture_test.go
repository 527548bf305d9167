package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func captureTarget(t *testing.T) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "fd")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func decodeEvents(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var ev map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &ev))
		events = append(events, ev)
	}
	return events
}

func TestOutputCapture_LogsLinesAndRestores(t *testing.T) {
	target := captureTarget(t)
	fd := int(target.Fd())

	var buf bytes.Buffer
	c := newOutputCapture(zerolog.New(&buf), captureStream{name: "stderr", fd: fd, level: zerolog.WarnLevel})
	require.NoError(t, c.Start())

	_, err := unix.Write(fd, []byte("(desklet:4242): Gdk-WARNING **: no monitor\n\n  \ntrailing"))
	require.NoError(t, err)
	c.Stop()

	events := decodeEvents(t, &buf)
	require.Len(t, events, 2)
	assert.Equal(t, "(desklet:4242): Gdk-WARNING **: no monitor", events[0]["message"])
	assert.Equal(t, "warn", events[0]["level"])
	assert.Equal(t, "stderr", events[0]["stream"])
	assert.Equal(t, "trailing", events[1]["message"])

	_, err = unix.Write(fd, []byte("after stop\n"))
	require.NoError(t, err)
	content, err := os.ReadFile(target.Name())
	require.NoError(t, err)
	assert.Equal(t, "after stop\n", string(content), "captured bytes never reach the original target")
}

func TestOutputCapture_StartAndStopAreIdempotent(t *testing.T) {
	target := captureTarget(t)
	var buf bytes.Buffer
	c := newOutputCapture(zerolog.New(&buf), captureStream{name: "stdout", fd: int(target.Fd()), level: zerolog.InfoLevel})

	c.Stop()
	require.NoError(t, c.Start())
	require.NoError(t, c.Start())

	_, err := unix.Write(int(target.Fd()), []byte("once\n"))
	require.NoError(t, err)
	c.Stop()
	c.Stop()

	events := decodeEvents(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, "info", events[0]["level"])
}

func TestOutputCapture_FailedStartRestoresEarlierStreams(t *testing.T) {
	target := captureTarget(t)
	fd := int(target.Fd())

	c := newOutputCapture(zerolog.Nop(),
		captureStream{name: "ok", fd: fd, level: zerolog.InfoLevel},
		captureStream{name: "bad", fd: -1, level: zerolog.InfoLevel},
	)
	err := c.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capture bad")

	_, err = unix.Write(fd, []byte("direct\n"))
	require.NoError(t, err)
	content, err := os.ReadFile(target.Name())
	require.NoError(t, err)
	assert.Equal(t, "direct\n", string(content))
}
