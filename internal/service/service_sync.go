// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/go-resource-sync/internal/batch"
	"github.com/MKhiriev/go-resource-sync/internal/config"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/store"
	"github.com/MKhiriev/go-resource-sync/internal/validators"
	"github.com/MKhiriev/go-resource-sync/models"
)

// IDGenerator mints globally unique identifiers for clients and sync ids.
type IDGenerator interface {
	Generate() string
}

// syncService implements [SyncService]: the download and upload state
// machines over the ledger, the resource registry, the per-resource conflict
// strategies, the idempotency cache, and the advisory lock coordinator.
//
// All timestamps are server-assigned milliseconds since epoch. Conflict
// detection is a strict comparison: the upload proceeds when the ledger's
// last-modified equals the client's claimed baseline, and the strategy is
// consulted only when the ledger is strictly newer.
type syncService struct {
	ledger       store.LedgerRepository
	clientStates store.ClientStateRepository
	cache        IdempotencyCache
	registry     *Registry
	locks        LockCoordinator
	validator    validators.Validator
	policy       batch.ContinuationPolicy
	ids          IDGenerator

	downloadSkew time.Duration
	now          func() time.Time

	logger *logger.Logger
}

// NewSyncService constructs the synchronization engine.
//
// policy governs whether upload processing continues past a failed item —
// the same continuation semantics the batch dispatcher applies to plain
// CRUD sub-requests.
func NewSyncService(
	ledger store.LedgerRepository,
	clientStates store.ClientStateRepository,
	cache IdempotencyCache,
	registry *Registry,
	locks LockCoordinator,
	validator validators.Validator,
	policy batch.ContinuationPolicy,
	ids IDGenerator,
	cfg config.Sync,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		ledger:       ledger,
		clientStates: clientStates,
		cache:        cache,
		registry:     registry,
		locks:        locks,
		validator:    validator,
		policy:       policy,
		ids:          ids,
		downloadSkew: cfg.DownloadSkew,
		now:          time.Now,
		logger:       logger,
	}
}

// Download implements [SyncService].
//
// Unknown clients (empty or unregistered id) are treated as first contact: a
// fresh id is minted, registered, and carried in the response. The response's
// sync time is the server clock minus the configured skew, so a client that
// adopts it as its next baseline re-sees changes committed concurrently with
// this download instead of missing them.
func (s *syncService) Download(ctx context.Context, request models.DownloadRequest) (models.DownloadResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.DownloadResponse{}, batch.WrapError(batch.KindBadRequest, err)
	}

	clientID := request.ClientID
	firstContact := clientID == ""
	if !firstContact {
		if _, err := s.clientStates.Get(ctx, clientID); err != nil {
			if !errors.Is(err, store.ErrClientStateNotFound) {
				return models.DownloadResponse{}, err
			}
			firstContact = true
		}
	}

	response := models.DownloadResponse{
		Items: make(map[string][]models.ChangeEnvelope, len(request.Queries)),
	}

	if firstContact {
		clientID = s.ids.Generate()
		if err := s.clientStates.Create(ctx, clientID); err != nil {
			return models.DownloadResponse{}, err
		}
		response.ClientID = clientID

		log.Info().
			Str("func", "syncService.Download").
			Str("client_id", clientID).
			Msg("first contact, minted new client id")
	}

	syncTime := s.now().Add(-s.downloadSkew).UnixMilli()

	for resourceName, query := range request.Queries {
		registration, err := s.registry.Lookup(resourceName)
		if err != nil {
			return models.DownloadResponse{}, batch.WrapError(batch.KindNotFound, err)
		}

		entries, err := s.ledger.FindChangedSince(ctx, resourceName, query.LastDownloadTime, false)
		if err != nil {
			return models.DownloadResponse{}, err
		}

		envelopes, err := s.assembleEnvelopes(ctx, registration, resourceName, query.Filter, entries)
		if err != nil {
			return models.DownloadResponse{}, err
		}
		response.Items[resourceName] = envelopes
	}

	if err := s.clientStates.SetLastDownloadTime(ctx, clientID, syncTime); err != nil {
		return models.DownloadResponse{}, err
	}

	response.SyncTime = syncTime

	log.Info().
		Str("func", "syncService.Download").
		Str("client_id", clientID).
		Int("resources", len(request.Queries)).
		Int64("sync_time", syncTime).
		Msg("download assembled")

	return response, nil
}

// assembleEnvelopes projects ledger entries into wire envelopes. Tombstones
// carry no payload and bypass the resource filter; live entries are loaded
// from the domain resource and, when a filter is present and the resource
// supports filtering, narrowed to matching payloads.
func (s *syncService) assembleEnvelopes(ctx context.Context, registration Registration, resourceName string, filter json.RawMessage, entries []models.LedgerEntry) ([]models.ChangeEnvelope, error) {
	log := logger.FromContext(ctx)

	envelopes := make([]models.ChangeEnvelope, 0, len(entries))

	for _, entry := range entries {
		if entry.Tombstone() {
			envelopes = append(envelopes, models.ChangeEnvelope{
				SyncID:       entry.SyncID,
				ResourceName: resourceName,
				Action:       models.ActionDelete,
				LastModified: entry.LastModified,
			})
			continue
		}

		payload, loadErr := registration.Resource.LoadPayload(ctx, entry.ServerItemID)
		if loadErr != nil {
			if errors.Is(loadErr, ErrPayloadNotFound) {
				// ledger says live, domain says gone: report the drift and
				// keep the download usable
				log.Warn().
					Str("func", "syncService.assembleEnvelopes").
					Str("sync_id", entry.SyncID).
					Str("server_item_id", entry.ServerItemID).
					Msg("live ledger entry has no domain payload, skipping")
				continue
			}
			return nil, loadErr
		}

		if len(filter) > 0 {
			if filterer, ok := registration.Resource.(Filterer); ok {
				match, matchErr := filterer.MatchFilter(filter, payload)
				if matchErr != nil {
					return nil, batch.WrapError(batch.KindBadRequest, matchErr)
				}
				if !match {
					continue
				}
			}
		}

		envelopes = append(envelopes, models.ChangeEnvelope{
			SyncID:       entry.SyncID,
			ResourceName: resourceName,
			Action:       entry.LastAction,
			LastModified: entry.LastModified,
			Element:      payload,
		})
	}

	return envelopes, nil
}

// Upload implements [SyncService].
//
// The state machine per item: duplicate check → replay or processing →
// committed, conflict-rejected, or failed. Items past a terminating failure
// are reported as not processed. The idempotency cache commits only when
// every item committed cleanly and is evicted otherwise.
func (s *syncService) Upload(ctx context.Context, request models.UploadRequest) (*UploadOutcome, error) {
	log := logger.FromContext(ctx)

	// envelope-level problems become per-item outcomes below; only the
	// request frame is validated up front
	if err := s.validator.Validate(ctx, request, validators.FieldClientID, validators.FieldFingerprint); err != nil {
		return nil, batch.WrapError(batch.KindBadRequest, err)
	}
	if len(request.Items) == 0 {
		return nil, batch.WrapError(batch.KindBadRequest, validators.ErrEmptyItems)
	}

	// uploads require a client registered via first-contact download
	if _, err := s.clientStates.Get(ctx, request.ClientID); err != nil {
		if errors.Is(err, store.ErrClientStateNotFound) {
			return nil, batch.WrapError(batch.KindBadRequest, ErrUnknownClient)
		}
		return nil, err
	}

	duplicate, err := s.cache.IsDuplicate(ctx, request.ClientID, request.Fingerprint)
	if err != nil {
		return nil, err
	}
	if duplicate {
		snapshot, replayErr := s.cache.Replay(ctx, request.ClientID)
		if replayErr == nil {
			log.Info().
				Str("func", "syncService.Upload").
				Str("client_id", request.ClientID).
				Str("fingerprint", request.Fingerprint).
				Msg("duplicate upload, replaying cached response")
			return &UploadOutcome{Replayed: true, Snapshot: snapshot}, nil
		}
		if !errors.Is(replayErr, ErrNoCachedResult) {
			return nil, replayErr
		}
		// fingerprint matched but the snapshot was purged mid-flight:
		// reprocess from scratch, duplicate effects land on DuplicateKey
	}

	requestTime := s.now().UnixMilli()
	results := make([]models.UploadItemResult, 0, len(request.Items))
	terminated := false

	for _, envelope := range request.Items {
		if terminated || ctx.Err() != nil {
			results = append(results, models.UploadItemResult{
				SyncID: envelope.SyncID,
				Status: models.UploadStatusNotProcessed,
			})
			continue
		}

		result, kind := s.processEnvelope(ctx, request.ClientID, envelope, requestTime)
		results = append(results, result)

		if result.Status == models.UploadStatusOK {
			continue
		}

		log.Warn().
			Str("func", "syncService.Upload").
			Str("client_id", request.ClientID).
			Str("sync_id", result.SyncID).
			Str("status", result.Status).
			Str("kind", kind.String()).
			Msg("upload item did not commit")

		if kind == batch.KindUnexpected || s.policy.Decide(kind) == batch.Terminate {
			terminated = true
		}
	}

	response := models.UploadResponse{Items: results}

	if response.Clean() {
		response.LastUploadTime = requestTime

		snapshot, marshalErr := json.Marshal(response)
		if marshalErr != nil {
			return nil, marshalErr
		}
		if commitErr := s.cache.Commit(ctx, request.ClientID, request.Fingerprint, snapshot, requestTime); commitErr != nil {
			return nil, commitErr
		}

		log.Info().
			Str("func", "syncService.Upload").
			Str("client_id", request.ClientID).
			Int("items", len(results)).
			Int64("last_upload_time", requestTime).
			Msg("upload committed cleanly")

		return &UploadOutcome{Response: response}, nil
	}

	// a rejected upload must not be silently replayable
	if evictErr := s.cache.Evict(ctx, request.ClientID); evictErr != nil {
		return nil, evictErr
	}

	return &UploadOutcome{Response: response}, nil
}

// processEnvelope runs one upload item through the state machine and
// returns its outcome together with the failure kind consulted by the
// continuation policy (the kind is meaningless for clean commits).
func (s *syncService) processEnvelope(ctx context.Context, clientID string, envelope models.ChangeEnvelope, requestTime int64) (models.UploadItemResult, batch.ErrorKind) {
	if err := s.validator.Validate(ctx, envelope); err != nil {
		return failedResult(envelope.SyncID, err), batch.KindBadRequest
	}

	registration, err := s.registry.Lookup(envelope.ResourceName)
	if err != nil {
		return failedResult(envelope.SyncID, err), batch.KindNotFound
	}

	if envelope.Action == models.ActionCreate {
		return s.processCreate(ctx, registration, envelope, requestTime)
	}

	return s.processMutation(ctx, clientID, registration, envelope, requestTime)
}

// processCreate handles an uploaded CREATE. A client-supplied sync id that
// already has an entry, or a domain object already mapped in the ledger,
// yields a duplicated outcome carrying the existing entry and payload so
// the client can reconcile.
func (s *syncService) processCreate(ctx context.Context, registration Registration, envelope models.ChangeEnvelope, requestTime int64) (models.UploadItemResult, batch.ErrorKind) {
	syncID := envelope.SyncID
	if syncID != "" {
		existing, getErr := s.ledger.Get(ctx, syncID)
		if getErr == nil {
			return s.duplicatedResult(ctx, registration, existing), batch.KindDuplicateKey
		}
		if !errors.Is(getErr, store.ErrSyncEntryNotFound) {
			return failedResult(syncID, getErr), batch.KindUnexpected
		}
	} else {
		syncID = s.ids.Generate()
	}

	serverItemID, applyErr := registration.Resource.ApplyCreate(ctx, envelope.Element)
	if applyErr != nil {
		return failedResult(syncID, applyErr), kindOfResourceError(applyErr)
	}

	entry, recordErr := s.ledger.RecordCreate(ctx, syncID, envelope.ResourceName, serverItemID, requestTime)
	if recordErr != nil {
		if errors.Is(recordErr, store.ErrDuplicateSyncEntry) {
			existing, lookupErr := s.ledger.GetByItem(ctx, envelope.ResourceName, serverItemID)
			if lookupErr == nil {
				return s.duplicatedResult(ctx, registration, existing), batch.KindDuplicateKey
			}

			if errors.Is(lookupErr, store.ErrSyncEntryNotFound) {
				// the collision was on the sync id: a concurrent create won
				// the race and the item applied above has no ledger entry,
				// so undo the domain insert rather than leave it orphaned
				if undoErr := registration.Resource.ApplyDelete(ctx, serverItemID); undoErr != nil {
					logger.FromContext(ctx).Err(undoErr).
						Str("func", "syncService.processCreate").
						Str("sync_id", syncID).
						Str("server_item_id", serverItemID).
						Msg("failed to undo domain create after duplicate ledger entry")
				}
			}

			return failedResult(syncID, recordErr), batch.KindDuplicateKey
		}
		return failedResult(syncID, recordErr), batch.KindUnexpected
	}

	return models.UploadItemResult{
		SyncID:       entry.SyncID,
		Status:       models.UploadStatusOK,
		ServerItemID: entry.ServerItemID,
	}, batch.KindUnexpected
}

// processMutation handles an uploaded UPDATE or DELETE with optimistic
// conflict detection: the strategy is consulted only when the ledger's
// last-modified is strictly newer than the client's claimed baseline. The
// ledger is mutated only after the domain apply succeeds.
func (s *syncService) processMutation(ctx context.Context, clientID string, registration Registration, envelope models.ChangeEnvelope, requestTime int64) (models.UploadItemResult, batch.ErrorKind) {
	syncID := envelope.SyncID

	if lockErr := s.locks.Acquire(ctx, syncID, clientID, LockExclusive); lockErr != nil {
		return failedResult(syncID, lockErr), batch.KindLocked
	}
	defer func() {
		_ = s.locks.Release(ctx, syncID, clientID)
	}()

	entry, getErr := s.ledger.Get(ctx, syncID)
	if getErr != nil {
		if errors.Is(getErr, store.ErrSyncEntryNotFound) {
			return failedResult(syncID, getErr), batch.KindNotFound
		}
		return failedResult(syncID, getErr), batch.KindUnexpected
	}

	if entry.LastModified > envelope.LastModified {
		serverPayload := s.loadPayloadQuiet(ctx, registration.Resource, entry)

		decision := registration.Strategy.Resolve(
			Change{
				Entry: models.LedgerEntry{
					SyncID:       syncID,
					ResourceName: envelope.ResourceName,
					LastAction:   envelope.Action,
					LastModified: envelope.LastModified,
				},
				Payload: envelope.Element,
			},
			Change{Entry: entry, Payload: serverPayload},
		)

		switch decision {
		case DecisionKeepServer:
			return models.UploadItemResult{
				SyncID:        syncID,
				Status:        models.UploadStatusOK,
				ServerItemID:  entry.ServerItemID,
				ServerPayload: serverPayload,
			}, batch.KindUnexpected

		case DecisionConflict:
			serverEntry := entry
			return models.UploadItemResult{
				SyncID:        syncID,
				Status:        models.UploadStatusConflict,
				ServerEntry:   &serverEntry,
				ServerPayload: serverPayload,
			}, batch.KindConflict
		}
		// DecisionAcceptClient: proceed to apply
	}

	var applyErr error
	switch envelope.Action {
	case models.ActionUpdate:
		applyErr = registration.Resource.ApplyUpdate(ctx, entry.ServerItemID, envelope.Element)
	case models.ActionDelete:
		applyErr = registration.Resource.ApplyDelete(ctx, entry.ServerItemID)
	}
	if applyErr != nil {
		return failedResult(syncID, applyErr), kindOfResourceError(applyErr)
	}

	updated, recordErr := s.ledger.RecordMutation(ctx, syncID, envelope.Action, requestTime)
	if recordErr != nil {
		if errors.Is(recordErr, store.ErrSyncEntryNotFound) {
			return failedResult(syncID, recordErr), batch.KindNotFound
		}
		return failedResult(syncID, recordErr), batch.KindUnexpected
	}

	return models.UploadItemResult{
		SyncID:       updated.SyncID,
		Status:       models.UploadStatusOK,
		ServerItemID: updated.ServerItemID,
	}, batch.KindUnexpected
}

// duplicatedResult builds the outcome for a CREATE collision, carrying the
// existing entry and its current payload.
func (s *syncService) duplicatedResult(ctx context.Context, registration Registration, existing models.LedgerEntry) models.UploadItemResult {
	serverEntry := existing
	return models.UploadItemResult{
		SyncID:        existing.SyncID,
		Status:        models.UploadStatusDuplicated,
		ServerEntry:   &serverEntry,
		ServerPayload: s.loadPayloadQuiet(ctx, registration.Resource, existing),
	}
}

// loadPayloadQuiet fetches the server payload for conflict and duplication
// reporting. Tombstones have no payload; load failures degrade to a missing
// payload rather than failing the whole item.
func (s *syncService) loadPayloadQuiet(ctx context.Context, resource Resource, entry models.LedgerEntry) json.RawMessage {
	if entry.Tombstone() {
		return nil
	}

	payload, err := resource.LoadPayload(ctx, entry.ServerItemID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "syncService.loadPayloadQuiet").
			Str("sync_id", entry.SyncID).
			Str("server_item_id", entry.ServerItemID).
			Msg("failed to load server payload for reporting")
		return nil
	}

	return payload
}

func failedResult(syncID string, err error) models.UploadItemResult {
	return models.UploadItemResult{
		SyncID:      syncID,
		Status:      models.UploadStatusFailed,
		ErrorDetail: err.Error(),
	}
}

// kindOfResourceError classifies an error returned by a domain resource.
func kindOfResourceError(err error) batch.ErrorKind {
	switch {
	case errors.Is(err, ErrPayloadNotFound):
		return batch.KindNotFound
	case errors.Is(err, ErrItemLocked):
		return batch.KindLocked
	}

	return batch.KindOf(err)
}
