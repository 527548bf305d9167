package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bnema/desklet/internal/application/port/mocks"
	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/domain/entity"
)

func TestInteractionHandler_DragPersistsFinalOrigin(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	store := mocks.NewMockSettingsStore(ctrl)

	h := usecase.NewInteractionHandler(entity.PlacementCustom, surface, store)
	assert.True(t, h.Active())

	gomock.InOrder(
		surface.EXPECT().Origin().Return(entity.Point{X: 100, Y: 100}),
		surface.EXPECT().Move(entity.Point{X: 150, Y: 170}),
		store.EXPECT().SavePosition(gomock.Any(), entity.Point{X: 150, Y: 170}).Return(nil),
	)

	assert.True(t, h.ButtonPress(ctx, entity.PrimaryButton, entity.Point{X: 150, Y: 150}))
	assert.True(t, h.Dragging())
	assert.True(t, h.Motion(ctx, entity.Point{X: 200, Y: 220}))
	assert.True(t, h.ButtonRelease(ctx, entity.PrimaryButton, entity.Point{X: 200, Y: 220}))
	assert.False(t, h.Dragging())
}

func TestInteractionHandler_NoClampingDuringDrag(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	store := mocks.NewMockSettingsStore(ctrl)
	h := usecase.NewInteractionHandler(entity.PlacementCustom, surface, store)

	surface.EXPECT().Origin().Return(entity.Point{X: 10, Y: 10})
	surface.EXPECT().Move(entity.Point{X: -90, Y: -40})

	h.ButtonPress(ctx, entity.PrimaryButton, entity.Point{X: 20, Y: 20})
	h.Motion(ctx, entity.Point{X: -80, Y: -30})
}

func TestInteractionHandler_PressWithoutMotionSavesCurrentOrigin(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	store := mocks.NewMockSettingsStore(ctrl)
	h := usecase.NewInteractionHandler(entity.PlacementCustom, surface, store)

	surface.EXPECT().Origin().Return(entity.Point{X: 300, Y: 400})
	store.EXPECT().SavePosition(gomock.Any(), entity.Point{X: 300, Y: 400}).Return(nil)

	h.ButtonPress(ctx, entity.PrimaryButton, entity.Point{X: 310, Y: 410})
	h.ButtonRelease(ctx, entity.PrimaryButton, entity.Point{X: 310, Y: 410})
}

func TestInteractionHandler_IgnoresNonPrimaryButtons(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	// No expectations: any surface or store call fails the test.
	h := usecase.NewInteractionHandler(entity.PlacementCustom, mocks.NewMockSurface(ctrl), mocks.NewMockSettingsStore(ctrl))

	assert.False(t, h.ButtonPress(ctx, 3, entity.Point{X: 1, Y: 1}))
	assert.False(t, h.Motion(ctx, entity.Point{X: 5, Y: 5}))
	assert.False(t, h.ButtonRelease(ctx, 3, entity.Point{X: 5, Y: 5}))
	assert.False(t, h.ButtonRelease(ctx, entity.PrimaryButton, entity.Point{X: 5, Y: 5}), "release without press")
}

func TestInteractionHandler_InactiveOutsideCustomMode(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	for _, mode := range []entity.PlacementMode{
		entity.PlacementTopLeft,
		entity.PlacementTopRight,
		entity.PlacementBottomLeft,
		entity.PlacementBottomRight,
		entity.PlacementMode("sideways"),
	} {
		h := usecase.NewInteractionHandler(mode, mocks.NewMockSurface(ctrl), mocks.NewMockSettingsStore(ctrl))
		assert.False(t, h.Active(), mode)
		assert.False(t, h.ButtonPress(ctx, entity.PrimaryButton, entity.Point{}), mode)
		assert.False(t, h.Motion(ctx, entity.Point{X: 9, Y: 9}), mode)
		assert.False(t, h.ButtonRelease(ctx, entity.PrimaryButton, entity.Point{}), mode)
	}
}

func TestInteractionHandler_SaveFailureIsNotFatal(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	store := mocks.NewMockSettingsStore(ctrl)
	h := usecase.NewInteractionHandler(entity.PlacementCustom, surface, store)

	surface.EXPECT().Origin().Return(entity.Point{})
	store.EXPECT().SavePosition(gomock.Any(), gomock.Any()).Return(errors.New("read-only fs"))

	h.ButtonPress(ctx, entity.PrimaryButton, entity.Point{X: 1, Y: 1})
	assert.True(t, h.ButtonRelease(ctx, entity.PrimaryButton, entity.Point{X: 1, Y: 1}))
	assert.False(t, h.Dragging())
}
