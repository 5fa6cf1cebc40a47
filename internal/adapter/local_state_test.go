package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalState(t *testing.T) *LocalState {
	t.Helper()

	state, err := OpenLocalState(filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { state.Close() })
	return state
}

func TestLocalState_ClientIDRoundTrip(t *testing.T) {
	state := newTestLocalState(t)
	ctx := context.Background()

	clientID, err := state.ClientID(ctx)
	require.NoError(t, err)
	assert.Empty(t, clientID, "fresh state has no client id")

	require.NoError(t, state.SetClientID(ctx, "client-1"))

	clientID, err = state.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "client-1", clientID)

	// first contact can legitimately happen twice if the first response
	// is lost; the newer id wins
	require.NoError(t, state.SetClientID(ctx, "client-2"))

	clientID, err = state.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "client-2", clientID)
}

func TestLocalState_DownloadBaselines(t *testing.T) {
	state := newTestLocalState(t)
	ctx := context.Background()

	baseline, err := state.LastDownloadTime(ctx, "notes")
	require.NoError(t, err)
	assert.Zero(t, baseline, "unseen resources start from the full history")

	require.NoError(t, state.SetLastDownloadTime(ctx, "notes", 12345))
	require.NoError(t, state.SetLastDownloadTime(ctx, "tags", 999))

	baseline, err = state.LastDownloadTime(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), baseline)

	require.NoError(t, state.SetLastDownloadTime(ctx, "notes", 20000))

	baseline, err = state.LastDownloadTime(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, int64(20000), baseline)
}
