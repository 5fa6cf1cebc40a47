// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client-side synchronization runtime.
//
// It wires the transport adapter, the durable local state, and the embedding
// application's change applier into a periodic download loop plus an upload
// entry point.
package client
