package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/insightify-api/internal/config"
	"github.com/vfg2006/insightify-api/internal/usecases/insighting/mocks"
)

func TestDatasetRefreshService_RefreshDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mocks.NewMockDatasetRefresher(ctrl)
	refresher.EXPECT().Refresh().Return("snap42", nil)

	service := NewDatasetRefreshService(refresher, &config.Config{})

	err := service.refreshDataset()
	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, "snap42", status["last_snapshot_id"])
	assert.Equal(t, false, status["refresh_running"])
	assert.False(t, service.lastRefreshStartedAt.IsZero())
	assert.False(t, service.lastRefreshFinishedAt.IsZero())
}

func TestDatasetRefreshService_RefreshDatasetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mocks.NewMockDatasetRefresher(ctrl)
	refresher.EXPECT().Refresh().Return("", errors.New("arquivo ausente"))

	service := NewDatasetRefreshService(refresher, &config.Config{})

	err := service.refreshDataset()
	assert.Error(t, err)

	// O snapshot anterior é preservado em caso de erro
	status := service.GetStatus()
	assert.Equal(t, "", status["last_snapshot_id"])
	assert.Equal(t, false, status["refresh_running"])
}

func TestDatasetRefreshService_RefreshSkippedWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada a Refresh é esperada
	refresher := mocks.NewMockDatasetRefresher(ctrl)

	service := NewDatasetRefreshService(refresher, &config.Config{})
	service.refreshRunning = true

	err := service.refreshDataset()
	assert.NoError(t, err)
}

func TestDatasetRefreshService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mocks.NewMockDatasetRefresher(ctrl)

	cfg := &config.Config{
		DatasetRefresh: config.DatasetRefresh{Enabled: false},
	}

	service := NewDatasetRefreshService(refresher, cfg)

	// Desabilitado: Start não agenda nada e não falha
	err := service.Start(context.Background())
	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["refresh_enabled"])
}
