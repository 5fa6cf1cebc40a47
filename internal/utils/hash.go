package utils

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances,
// shared by all fingerprint computations to avoid per-request allocations.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// HashBytes computes a SHA-256 digest over the given byte slice using a
// hasher pulled from the package pool.
func HashBytes(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// Fingerprint computes the stable request fingerprint of an upload body:
// the hex-encoded SHA-256 digest of its canonical JSON form.
//
// Canonicalization is JSON compaction — insignificant whitespace is removed
// but field order is preserved. A client that retries a request resends the
// byte-identical body, so this is sufficient for the fingerprint to match
// exactly on true retry; semantically equal bodies serialized differently
// are deliberately treated as distinct requests.
func Fingerprint(body []byte) (string, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return "", fmt.Errorf("error canonicalizing request body: %w", err)
	}

	return hex.EncodeToString(HashBytes(compact.Bytes())), nil
}

// FingerprintValue computes the fingerprint of any JSON-serializable value
// by marshaling it first. Intended for callers that build requests
// programmatically rather than from raw wire bytes.
func FingerprintValue(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error marshaling value for fingerprint: %w", err)
	}

	return Fingerprint(data)
}
