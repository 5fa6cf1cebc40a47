package service

import "errors"

var (
	// ErrUnknownResource is returned when a request names a resource that
	// was never registered.
	ErrUnknownResource = errors.New("resource is not registered")

	// ErrDuplicateResource is returned when a resource name is registered
	// twice.
	ErrDuplicateResource = errors.New("resource already registered")

	// ErrUnknownClient is returned when an upload names a client that has
	// never completed first contact.
	ErrUnknownClient = errors.New("client is not registered")

	// ErrNoCachedResult is returned by Replay when the client has no
	// committed response snapshot.
	ErrNoCachedResult = errors.New("no cached result to replay")

	// ErrItemLocked is returned when an advisory exclusive lock on the item
	// is held by another token.
	ErrItemLocked = errors.New("item is locked by another holder")

	// ErrPayloadNotFound is returned by a resource when no domain payload
	// exists for the given server item id.
	ErrPayloadNotFound = errors.New("payload is not found")
)
