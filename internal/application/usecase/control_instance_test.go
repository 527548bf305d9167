package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/application/port/mocks"
	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/domain/entity"
)

func TestControlInstance_StopNotRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	controller := mocks.NewMockInstanceController(ctrl)
	controller.EXPECT().Status(gomock.Any()).Return(&port.InstanceStatus{StaleRemoved: true, PID: 12}, nil)

	out, err := usecase.NewControlInstanceUseCase(controller, 0).Stop(testContext())
	require.NoError(t, err)
	assert.False(t, out.WasRunning)
}

func TestControlInstance_StopFirstAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	controller := mocks.NewMockInstanceController(ctrl)
	controller.EXPECT().Status(gomock.Any()).Return(&port.InstanceStatus{Running: true, PID: 42}, nil)
	controller.EXPECT().Stop(gomock.Any(), time.Second).Return(nil)

	out, err := usecase.NewControlInstanceUseCase(controller, 0).Stop(testContext())
	require.NoError(t, err)
	assert.True(t, out.WasRunning)
	assert.Equal(t, 42, out.PID)
	assert.False(t, out.Retried)
}

func TestControlInstance_StopGraceRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	controller := mocks.NewMockInstanceController(ctrl)
	controller.EXPECT().Status(gomock.Any()).Return(&port.InstanceStatus{Running: true, PID: 42}, nil)
	gomock.InOrder(
		controller.EXPECT().Stop(gomock.Any(), time.Second).Return(entity.ErrStopTimeout),
		controller.EXPECT().Stop(gomock.Any(), 500*time.Millisecond).Return(nil),
	)

	out, err := usecase.NewControlInstanceUseCase(controller, 0).Stop(testContext())
	require.NoError(t, err)
	assert.True(t, out.Retried)
}

func TestControlInstance_StopTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	controller := mocks.NewMockInstanceController(ctrl)
	controller.EXPECT().Status(gomock.Any()).Return(&port.InstanceStatus{Running: true, PID: 42}, nil)
	controller.EXPECT().Stop(gomock.Any(), 2*time.Second).Return(entity.ErrStopTimeout)
	controller.EXPECT().Stop(gomock.Any(), time.Second).Return(entity.ErrStopTimeout)

	out, err := usecase.NewControlInstanceUseCase(controller, 3*time.Second).Stop(testContext())
	require.ErrorIs(t, err, entity.ErrStopTimeout)
	assert.True(t, out.WasRunning)
}

func TestControlInstance_StatusError(t *testing.T) {
	ctrl := gomock.NewController(t)
	controller := mocks.NewMockInstanceController(ctrl)
	controller.EXPECT().Status(gomock.Any()).Return(nil, errors.New("eacces"))

	_, err := usecase.NewControlInstanceUseCase(controller, 0).Status(testContext())
	require.Error(t, err)
}
