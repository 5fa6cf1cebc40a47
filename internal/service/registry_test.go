package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResource struct {
	name string
}

func (r *stubResource) Name() string { return r.name }

func (r *stubResource) ApplyCreate(context.Context, json.RawMessage) (string, error) {
	return "", nil
}

func (r *stubResource) ApplyUpdate(context.Context, string, json.RawMessage) error { return nil }

func (r *stubResource) ApplyDelete(context.Context, string) error { return nil }

func (r *stubResource) LoadPayload(context.Context, string) (json.RawMessage, error) {
	return nil, ErrPayloadNotFound
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(&stubResource{name: "notes"}, NewForceClient()))

	registration, err := r.Lookup("notes")
	require.NoError(t, err)
	assert.Equal(t, "notes", registration.Resource.Name())
	assert.IsType(t, &ForceClient{}, registration.Strategy)
}

func TestRegistry_NilStrategyDefaultsToClientDefers(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(&stubResource{name: "notes"}, nil))

	registration, err := r.Lookup("notes")
	require.NoError(t, err)
	assert.IsType(t, &ClientDefers{}, registration.Strategy)
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(&stubResource{name: "notes"}, nil))
	err := r.Register(&stubResource{name: "notes"}, nil)
	assert.ErrorIs(t, err, ErrDuplicateResource)
}

func TestRegistry_UnknownResource(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup("ghosts")
	assert.ErrorIs(t, err, ErrUnknownResource)
}
