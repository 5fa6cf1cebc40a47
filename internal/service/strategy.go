// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"

	"github.com/MKhiriev/go-resource-sync/models"
)

// Decision is the verdict of a [ConflictStrategy] for one colliding upload.
type Decision int

const (
	// DecisionConflict rejects the write; the client is shown the server's
	// current state and must resubmit with explicit intent.
	DecisionConflict Decision = iota

	// DecisionAcceptClient applies the incoming write regardless of the
	// server timestamp (last writer wins).
	DecisionAcceptClient

	// DecisionKeepServer retains the server state; the upload item becomes
	// a no-op success carrying the server payload.
	DecisionKeepServer
)

// Change pairs a ledger entry with the domain payload it refers to. It is
// the unit a strategy reasons about on both sides of a collision.
type Change struct {
	Entry   models.LedgerEntry
	Payload json.RawMessage
}

// ConflictStrategy decides the outcome when an upload's claimed baseline is
// stale relative to the server's current record. Strategies are selected per
// resource type at registration time, hold no state, and must be safe to
// invoke concurrently for different items.
type ConflictStrategy interface {
	Resolve(clientChange, serverChange Change) Decision
}

// ClientDefers is the reference strategy that never silently picks a winner:
// every collision is reported back as a conflict.
type ClientDefers struct{}

func NewClientDefers() *ClientDefers {
	return &ClientDefers{}
}

// Resolve implements [ConflictStrategy]. It always returns [DecisionConflict].
func (s *ClientDefers) Resolve(_, _ Change) Decision {
	return DecisionConflict
}

// ForceClient is the reference last-writer-wins strategy: the incoming write
// is applied regardless of the server timestamp.
type ForceClient struct{}

func NewForceClient() *ForceClient {
	return &ForceClient{}
}

// Resolve implements [ConflictStrategy]. It always returns
// [DecisionAcceptClient].
func (s *ForceClient) Resolve(_, _ Change) Decision {
	return DecisionAcceptClient
}
