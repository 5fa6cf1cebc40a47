// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgIntegrityCheckFailed is returned when the fingerprint declared by an
	// upload does not match the fingerprint computed over its items.
	MsgIntegrityCheckFailed = "Integrity check failed"

	// MsgFingerprintFailed is returned when the server cannot compute a
	// fingerprint over the upload items.
	MsgFingerprintFailed = "failed to fingerprint request items"

	// MsgEmptyBatch is returned when a physical batch call carries no
	// sub-requests.
	MsgEmptyBatch = "empty batch"

	// MsgDownloadFailed is returned when the download state machine rejects a
	// request; the HTTP status carries the specific reason.
	MsgDownloadFailed = "error assembling download"

	// MsgUploadFailed is returned when the upload state machine rejects a
	// request before any item is processed.
	MsgUploadFailed = "error processing upload"

	// MsgInvalidGzipData is returned when a request declares a gzip body that
	// cannot be decompressed.
	MsgInvalidGzipData = "Invalid gzip data"
)
