// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-resource-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mocks.go -package=mock

// Applier is implemented by the embedding application. The runner hands it
// every downloaded change in server order; tombstones arrive with
// [models.ActionDelete] and no payload.
type Applier interface {
	Apply(ctx context.Context, resourceName string, change models.ChangeEnvelope) error
}

// State is the durable client-side synchronization state the runner reads
// and advances. [adapter.LocalState] is the shipped implementation.
type State interface {
	ClientID(ctx context.Context) (string, error)
	SetClientID(ctx context.Context, clientID string) error
	LastDownloadTime(ctx context.Context, resourceName string) (int64, error)
	SetLastDownloadTime(ctx context.Context, resourceName string, syncTime int64) error
}
