// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashBytes(t *testing.T) {
	data := []byte("test-data")

	sum1 := HashBytes(data)
	sum2 := HashBytes(data)

	require.NotEmpty(t, sum1)
	assert.True(t, bytes.Equal(sum1, sum2), "hash must be deterministic for the same input")

	// verify against direct computation
	expected := sha256.Sum256(data)
	assert.Equal(t, expected[:], sum1)
}

func TestFingerprint_WhitespaceInsensitive(t *testing.T) {
	compact := []byte(`{"client_id":"c1","items":[{"sync_id":"s1"}]}`)
	spaced := []byte(`{ "client_id": "c1", "items": [ { "sync_id": "s1" } ] }`)

	fp1, err := Fingerprint(compact)
	require.NoError(t, err)
	fp2, err := Fingerprint(spaced)
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2, "insignificant whitespace must not change the fingerprint")
}

func TestFingerprint_DiffersForDifferentBodies(t *testing.T) {
	fp1, err := Fingerprint([]byte(`{"client_id":"c1"}`))
	require.NoError(t, err)
	fp2, err := Fingerprint([]byte(`{"client_id":"c2"}`))
	require.NoError(t, err)

	assert.NotEqual(t, fp1, fp2)
}

func TestFingerprint_InvalidJSON(t *testing.T) {
	_, err := Fingerprint([]byte(`{not json`))
	assert.Error(t, err)
}

func TestFingerprint_IsHexSHA256(t *testing.T) {
	fp, err := Fingerprint([]byte(`{}`))
	require.NoError(t, err)

	raw, err := hex.DecodeString(fp)
	require.NoError(t, err)
	assert.Len(t, raw, sha256.Size)
}

func TestFingerprintValue_MatchesFingerprint(t *testing.T) {
	type body struct {
		ClientID string `json:"client_id"`
	}

	fromValue, err := FingerprintValue(body{ClientID: "c1"})
	require.NoError(t, err)

	fromBytes, err := Fingerprint([]byte(`{"client_id":"c1"}`))
	require.NoError(t, err)

	assert.Equal(t, fromBytes, fromValue)
}
