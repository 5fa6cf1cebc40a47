package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-resource-sync/models"
)

const (
	FieldClientID     = "client_id"
	FieldFingerprint  = "fingerprint"
	FieldItems        = "items"
	FieldSyncID       = "sync_id"
	FieldResourceName = "resource_name"
	FieldAction       = "action"
	FieldPayload      = "payload"
	FieldLastModified = "last_modified"
	FieldQueries      = "queries"
)

// SyncValidator performs structural checks on synchronization protocol
// inputs before the engine runs. Semantic checks (conflict detection,
// duplicate ids) stay with the engine and the ledger.
type SyncValidator struct {
}

func NewSyncValidator() Validator {
	return &SyncValidator{}
}

func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChangeEnvelope:
		return v.validateEnvelope(ctx, value, fields...)
	case *models.ChangeEnvelope:
		return v.validateEnvelope(ctx, *value, fields...)

	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.DownloadRequest:
		return v.validateDownloadRequest(ctx, value, fields...)
	case *models.DownloadRequest:
		return v.validateDownloadRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncValidator) validateEnvelope(_ context.Context, envelope models.ChangeEnvelope, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAction, FieldResourceName, FieldSyncID, FieldPayload, FieldLastModified}
	}

	for _, f := range fields {
		switch f {
		case FieldAction:
			if !envelope.Action.Valid() {
				return ErrInvalidAction
			}
		case FieldResourceName:
			if envelope.ResourceName == "" {
				return ErrMissingResourceName
			}
		case FieldSyncID:
			// a CREATE may omit the sync id; the server assigns one
			if envelope.SyncID == "" && envelope.Action != models.ActionCreate {
				return ErrMissingSyncID
			}
		case FieldPayload:
			if envelope.Action == models.ActionCreate && len(envelope.Element) == 0 {
				return ErrMissingPayload
			}
			if envelope.Action == models.ActionDelete && len(envelope.Element) != 0 {
				return ErrUnexpectedPayload
			}
		case FieldLastModified:
			if envelope.LastModified < 0 {
				return ErrNegativeTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateUploadRequest(ctx context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID, FieldFingerprint, FieldItems}
	}

	for _, f := range fields {
		switch f {
		case FieldClientID:
			if request.ClientID == "" {
				return ErrInvalidClientID
			}
		case FieldFingerprint:
			if request.Fingerprint == "" {
				return ErrInvalidFingerprint
			}
		case FieldItems:
			if len(request.Items) == 0 {
				return ErrEmptyItems
			}
			for i, envelope := range request.Items {
				if err := v.validateEnvelope(ctx, envelope); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateDownloadRequest(_ context.Context, request models.DownloadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQueries}
	}

	for _, f := range fields {
		switch f {
		case FieldQueries:
			if len(request.Queries) == 0 {
				return ErrNoQueries
			}
			for name, query := range request.Queries {
				if name == "" {
					return ErrMissingResourceName
				}
				if query.LastDownloadTime < 0 {
					return ErrNegativeTimestamp
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
