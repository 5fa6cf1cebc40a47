// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-resource-sync/internal/adapter"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/models"
)

// ErrNotRegistered is returned by [Runner.Push] when the client has never
// completed a first-contact download and therefore has no client id.
var ErrNotRegistered = errors.New("client is not registered: run a download first")

// Runner drives the client side of the synchronization protocol: it pulls
// changes for a fixed set of resources, hands them to the application's
// [Applier], and advances the per-resource download baselines only after a
// resource's changes were applied.
type Runner struct {
	client    adapter.SyncClient
	state     State
	applier   Applier
	resources []string
	interval  time.Duration
	logger    *logger.Logger
}

func NewRunner(client adapter.SyncClient, state State, applier Applier, resources []string, interval time.Duration, logger *logger.Logger) *Runner {
	return &Runner{
		client:    client,
		state:     state,
		applier:   applier,
		resources: resources,
		interval:  interval,
		logger:    logger,
	}
}

// Run executes SyncOnce on a fixed interval until ctx is cancelled. Failed
// cycles are logged and retried on the next tick.
func (r *Runner) Run(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Warn().Str("func", "*Runner.Run").Msg("non-positive interval, periodic sync disabled")
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.SyncOnce(ctx); err != nil {
				r.logger.Err(err).Str("func", "*Runner.Run").Msg("sync cycle failed")
			}
		}
	}
}

// SyncOnce performs one download cycle: it queries every configured resource
// from its stored baseline, applies the returned changes in server order,
// and records the acknowledged sync time as the next baseline. On first
// contact it persists the client id minted by the server.
func (r *Runner) SyncOnce(ctx context.Context) error {
	clientID, err := r.state.ClientID(ctx)
	if err != nil {
		return err
	}

	queries := make(map[string]models.ResourceQuery, len(r.resources))
	for _, resourceName := range r.resources {
		baseline, baselineErr := r.state.LastDownloadTime(ctx, resourceName)
		if baselineErr != nil {
			return baselineErr
		}
		queries[resourceName] = models.ResourceQuery{LastDownloadTime: baseline}
	}

	response, err := r.client.Download(ctx, models.DownloadRequest{
		ClientID: clientID,
		Queries:  queries,
	})
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}

	if response.ClientID != "" {
		if saveErr := r.state.SetClientID(ctx, response.ClientID); saveErr != nil {
			return saveErr
		}
		r.logger.Info().Str("func", "*Runner.SyncOnce").Str("client_id", response.ClientID).Msg("registered new client id")
	}

	for _, resourceName := range r.resources {
		changes := response.Items[resourceName]
		for _, change := range changes {
			if applyErr := r.applier.Apply(ctx, resourceName, change); applyErr != nil {
				// baseline stays put so the change is re-delivered next cycle
				return fmt.Errorf("apply %s change for %s: %w", change.Action, resourceName, applyErr)
			}
		}

		if saveErr := r.state.SetLastDownloadTime(ctx, resourceName, response.SyncTime); saveErr != nil {
			return saveErr
		}

		if len(changes) > 0 {
			r.logger.Debug().Str("func", "*Runner.SyncOnce").
				Str("resource", resourceName).
				Int("changes", len(changes)).
				Msg("applied downloaded changes")
		}
	}

	return nil
}

// Push uploads local changes under the stored client id. The response is
// returned even when the server reports per-item conflicts; callers inspect
// the per-item outcomes to decide what to resubmit.
func (r *Runner) Push(ctx context.Context, items []models.ChangeEnvelope) (models.UploadResponse, error) {
	clientID, err := r.state.ClientID(ctx)
	if err != nil {
		return models.UploadResponse{}, err
	}
	if clientID == "" {
		return models.UploadResponse{}, ErrNotRegistered
	}

	return r.client.Upload(ctx, models.UploadRequest{
		ClientID: clientID,
		Items:    items,
	})
}
