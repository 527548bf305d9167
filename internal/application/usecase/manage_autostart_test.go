package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/application/port/mocks"
	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/domain/entity"
)

func TestManageAutostart_EnablePersistsSetting(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	registrar := mocks.NewMockAutostartRegistrar(ctrl)
	store := mocks.NewMockSettingsStore(ctrl)

	settings := entity.DefaultSettings()
	registrar.EXPECT().Enable(gomock.Any()).Return("/home/u/.config/autostart/desklet.desktop", nil)
	store.EXPECT().Load(gomock.Any()).Return(&settings, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *entity.Settings) error {
		assert.True(t, s.Autostart)
		return nil
	})

	path, err := usecase.NewManageAutostartUseCase(registrar, store).Enable(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/home/u/.config/autostart/desklet.desktop", path)
}

func TestManageAutostart_DisableSkipsSaveWhenUnchanged(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	registrar := mocks.NewMockAutostartRegistrar(ctrl)
	store := mocks.NewMockSettingsStore(ctrl)

	settings := entity.DefaultSettings()
	registrar.EXPECT().Disable(gomock.Any()).Return(nil)
	store.EXPECT().Load(gomock.Any()).Return(&settings, nil)

	require.NoError(t, usecase.NewManageAutostartUseCase(registrar, store).Disable(ctx))
}

func TestManageAutostart_EnableRegistrarError(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	registrar := mocks.NewMockAutostartRegistrar(ctrl)
	store := mocks.NewMockSettingsStore(ctrl)

	registrar.EXPECT().Enable(gomock.Any()).Return("", errors.New("no executable"))

	_, err := usecase.NewManageAutostartUseCase(registrar, store).Enable(ctx)
	require.Error(t, err)
}

func TestManageAutostart_Status(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	registrar := mocks.NewMockAutostartRegistrar(ctrl)
	registrar.EXPECT().Status(gomock.Any()).Return(&port.AutostartStatus{Installed: true}, nil)

	st, err := usecase.NewManageAutostartUseCase(registrar, mocks.NewMockSettingsStore(ctrl)).Status(ctx)
	require.NoError(t, err)
	assert.True(t, st.Installed)
}
