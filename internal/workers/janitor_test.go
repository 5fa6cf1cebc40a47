package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/mock"
	"go.uber.org/mock/gomock"
)

func newTestJanitor(t *testing.T, retention time.Duration) (*replayJanitor, *mock.MockClientStateRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock.NewMockClientStateRepository(ctrl)
	j := newReplayJanitor(repo, time.Hour, retention, logger.Nop())
	return j, repo
}

func TestReplayJanitor_PurgeUsesRetentionCutoff(t *testing.T) {
	j, repo := newTestJanitor(t, 24*time.Hour)

	now := time.UnixMilli(1_700_000_000_000)
	j.now = func() time.Time { return now }

	wantCutoff := now.Add(-24 * time.Hour).UnixMilli()
	repo.EXPECT().PurgeReplaysBefore(gomock.Any(), wantCutoff).Return(int64(3), nil)

	j.purge(context.Background())
}

func TestReplayJanitor_PurgeToleratesStoreError(t *testing.T) {
	j, repo := newTestJanitor(t, time.Hour)

	repo.EXPECT().PurgeReplaysBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

	// a failed purge must not panic; the next tick retries
	j.purge(context.Background())
}

func TestReplayJanitor_NonPositiveIntervalDisablesLoop(t *testing.T) {
	j, _ := newTestJanitor(t, time.Hour)
	j.interval = 0

	// Run must return without spawning the ticker loop
	j.Run()
}
