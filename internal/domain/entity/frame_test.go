package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrames(durations ...time.Duration) []*Frame {
	frames := make([]*Frame, 0, len(durations))
	for _, d := range durations {
		frames = append(frames, &Frame{Width: 2, Height: 2, Stride: 8, Pix: make([]byte, 16), Duration: d})
	}
	return frames
}

func TestNewFrameSequence_Empty(t *testing.T) {
	_, err := NewFrameSequence(nil)
	require.ErrorIs(t, err, ErrDecode)
}

func TestFrameSequence_NextIsCyclic(t *testing.T) {
	seq, err := NewFrameSequence(testFrames(10*time.Millisecond, 20*time.Millisecond, 30*time.Millisecond))
	require.NoError(t, err)

	for start := 0; start < seq.Len(); start++ {
		i := start
		for n := 0; n < seq.Len(); n++ {
			i = seq.Next(i)
		}
		assert.Equal(t, start, i)
	}
	assert.Equal(t, 0, seq.Next(seq.Len()-1))
}

func TestFrameSequence_DurationDefaults(t *testing.T) {
	seq, err := NewFrameSequence(testFrames(0, -5*time.Millisecond, 40*time.Millisecond))
	require.NoError(t, err)

	assert.Equal(t, DefaultFrameDuration, seq.At(0).Duration)
	assert.Equal(t, DefaultFrameDuration, seq.At(1).Duration)
	assert.Equal(t, 40*time.Millisecond, seq.At(2).Duration)
	assert.Equal(t, 240*time.Millisecond, seq.TotalDuration())
	assert.Equal(t, Size{W: 2, H: 2}, seq.Size())
}
