// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/store"
)

// replayJanitor periodically purges upload response snapshots whose
// retention window has expired. A purged snapshot means a very late retry of
// that upload is reprocessed instead of replayed; duplicate effects then
// surface as duplicated outcomes rather than corrupting state.
type replayJanitor struct {
	clientStates store.ClientStateRepository

	interval  time.Duration
	retention time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func newReplayJanitor(clientStates store.ClientStateRepository, interval, retention time.Duration, logger *logger.Logger) *replayJanitor {
	return &replayJanitor{
		clientStates: clientStates,
		interval:     interval,
		retention:    retention,
		now:          time.Now,
		logger:       logger,
	}
}

// Run implements [Worker]. It spawns the ticker loop and returns
// immediately.
func (j *replayJanitor) Run() {
	if j.interval <= 0 {
		j.logger.Warn().
			Str("func", "replayJanitor.Run").
			Msg("janitor interval is not positive, replay purging disabled")
		return
	}

	go j.loop()
}

func (j *replayJanitor) loop() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for range ticker.C {
		j.purge(context.Background())
	}
}

func (j *replayJanitor) purge(ctx context.Context) {
	cutoff := j.now().Add(-j.retention).UnixMilli()

	purged, err := j.clientStates.PurgeReplaysBefore(ctx, cutoff)
	if err != nil {
		j.logger.Err(err).
			Str("func", "replayJanitor.purge").
			Int64("cutoff", cutoff).
			Msg("failed to purge expired replay snapshots")
		return
	}

	if purged > 0 {
		j.logger.Info().
			Str("func", "replayJanitor.purge").
			Int64("cutoff", cutoff).
			Int64("purged", purged).
			Msg("purged expired replay snapshots")
	}
}
