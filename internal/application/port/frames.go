// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"

	"github.com/bnema/desklet/internal/domain/entity"
)

// FrameDecoder builds the frame store from an animated image file.
// Every frame is fully materialized before Decode returns.
type FrameDecoder interface {
	Decode(ctx context.Context, path string) (*entity.FrameSequence, error)
}
