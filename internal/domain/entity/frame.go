// Package entity defines domain entities for the desklet.
package entity

import (
	"fmt"
	"time"
)

// DefaultFrameDuration is used for frames without authored timing.
const DefaultFrameDuration = 100 * time.Millisecond

// Frame is one fully materialized animation frame.
// Pix holds non-premultiplied RGBA, 4 bytes per pixel, Stride bytes per row.
type Frame struct {
	Width    int
	Height   int
	Stride   int
	Pix      []byte
	Duration time.Duration
}

// FrameDuration normalizes an authored delay. Zero or negative means
// "not authored" and yields DefaultFrameDuration.
func FrameDuration(authored time.Duration) time.Duration {
	if authored <= 0 {
		return DefaultFrameDuration
	}
	return authored
}

// FrameSequence is the immutable, ordered list of frames of one animation.
type FrameSequence struct {
	frames []*Frame
}

// NewFrameSequence builds a sequence. Frames must be non-empty.
func NewFrameSequence(frames []*Frame) (*FrameSequence, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrDecode)
	}
	for _, f := range frames {
		f.Duration = FrameDuration(f.Duration)
	}
	return &FrameSequence{frames: frames}, nil
}

// Len returns the number of frames.
func (s *FrameSequence) Len() int {
	return len(s.frames)
}

// At returns the frame at index i. i must be in [0, Len()).
func (s *FrameSequence) At(i int) *Frame {
	return s.frames[i]
}

// Next returns the index following i, wrapping to 0 after the last frame.
func (s *FrameSequence) Next(i int) int {
	return (i + 1) % len(s.frames)
}

// Size returns the dimensions of the first frame, which sizes the overlay.
func (s *FrameSequence) Size() Size {
	first := s.frames[0]
	return Size{W: first.Width, H: first.Height}
}

// TotalDuration sums the duration of one full cycle.
func (s *FrameSequence) TotalDuration() time.Duration {
	var total time.Duration
	for _, f := range s.frames {
		total += f.Duration
	}
	return total
}
