// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-resource-sync/internal/store"
)

// DocumentResource is the reference [Resource] implementation: items are
// opaque JSON documents stored verbatim in the item repository. It also
// implements [Filterer] with top-level field equality matching, so download
// queries can narrow live entries by document content.
type DocumentResource struct {
	name  string
	items store.ItemRepository
	ids   IDGenerator
}

// NewDocumentResource constructs a JSON document resource with the given
// logical name.
func NewDocumentResource(name string, items store.ItemRepository, ids IDGenerator) *DocumentResource {
	return &DocumentResource{
		name:  name,
		items: items,
		ids:   ids,
	}
}

// Name implements [Resource].
func (d *DocumentResource) Name() string { return d.name }

// ApplyCreate implements [Resource]. It mints a fresh server item id and
// stores the document under it.
func (d *DocumentResource) ApplyCreate(ctx context.Context, payload json.RawMessage) (string, error) {
	serverItemID := d.ids.Generate()

	if err := d.items.Insert(ctx, d.name, serverItemID, payload); err != nil {
		return "", err
	}

	return serverItemID, nil
}

// ApplyUpdate implements [Resource].
func (d *DocumentResource) ApplyUpdate(ctx context.Context, serverItemID string, payload json.RawMessage) error {
	err := d.items.Update(ctx, d.name, serverItemID, payload)
	if errors.Is(err, store.ErrItemNotFound) {
		return fmt.Errorf("%w: %w", ErrPayloadNotFound, err)
	}
	return err
}

// ApplyDelete implements [Resource]. The document is removed; the ledger
// tombstone remains the durable record of the deletion.
func (d *DocumentResource) ApplyDelete(ctx context.Context, serverItemID string) error {
	return d.items.Delete(ctx, d.name, serverItemID)
}

// LoadPayload implements [Resource].
func (d *DocumentResource) LoadPayload(ctx context.Context, serverItemID string) (json.RawMessage, error) {
	payload, err := d.items.Get(ctx, d.name, serverItemID)
	if errors.Is(err, store.ErrItemNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrPayloadNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// MatchFilter implements [Filterer]. The filter is a JSON object; a document
// matches when every top-level filter field is present in the document with
// an equal value.
func (d *DocumentResource) MatchFilter(filter, payload json.RawMessage) (bool, error) {
	var want map[string]any
	if err := json.Unmarshal(filter, &want); err != nil {
		return false, fmt.Errorf("malformed filter: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		// non-object documents never match a field filter
		return false, nil
	}

	for field, expected := range want {
		actual, ok := doc[field]
		if !ok || !reflect.DeepEqual(expected, actual) {
			return false, nil
		}
	}

	return true, nil
}
