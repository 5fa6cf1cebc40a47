// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package batch

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the stable classification every domain error carries across
// the dispatcher boundary. Continuation decisions and HTTP-equivalent status
// codes are derived from the kind, never from error text.
type ErrorKind int

const (
	// KindUnexpected covers everything without an explicit classification.
	// Always terminates the containing batch.
	KindUnexpected ErrorKind = iota

	// KindNotFound — the targeted item or resource does not exist.
	KindNotFound

	// KindBadRequest — the sub-request or envelope is malformed.
	KindBadRequest

	// KindDuplicateKey — a CREATE collides with an existing mapping.
	KindDuplicateKey

	// KindConflict — an optimistic check failed and the strategy did not
	// resolve the collision.
	KindConflict

	// KindLocked — an advisory lock on the item is held by another token.
	KindLocked
)

// String returns the kind's wire name.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindDuplicateKey:
		return "duplicate_key"
	case KindConflict:
		return "conflict"
	case KindLocked:
		return "locked"
	default:
		return "unexpected"
	}
}

// Error is a domain error tagged with its [ErrorKind]. Handlers return it
// (directly or wrapped) so the dispatcher can classify the failure without
// inspecting error text.
type Error struct {
	Kind   ErrorKind
	Detail string
	cause  error
}

// NewError builds a tagged domain error.
func NewError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// WrapError tags an underlying error with a kind, preserving the chain for
// [errors.Is] / [errors.As].
func WrapError(kind ErrorKind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Detail: err.Error(), cause: err}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf extracts the [ErrorKind] carried by err. Untagged errors are
// classified as [KindUnexpected].
func KindOf(err error) ErrorKind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return KindUnexpected
}

// StatusOf maps an error kind to its HTTP-equivalent status code.
func StatusOf(kind ErrorKind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindDuplicateKey, KindConflict:
		return http.StatusConflict
	case KindLocked:
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}
