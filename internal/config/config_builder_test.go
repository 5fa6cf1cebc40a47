package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	// env layer wins for fields the later layers leave zero
	first := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://env/db"}},
		Server:  Server{HTTPAddress: "env-host:8080"},
	}
	second := &StructuredConfig{
		Server: Server{RequestTimeout: 30 * time.Second},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-host:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestConfigBuilder_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDownloadSkew, cfg.Sync.DownloadSkew)
	assert.Equal(t, DefaultReplayRetention, cfg.Sync.ReplayRetention)
	assert.Equal(t, DefaultJanitorInterval, cfg.Workers.JanitorInterval)
}

func TestConfigBuilder_KeepsExplicitTunables(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Sync: Sync{DownloadSkew: 2 * time.Second},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Sync.DownloadSkew)
}

func TestValidate_NegativeSkew(t *testing.T) {
	cfg := &StructuredConfig{Sync: Sync{DownloadSkew: -time.Second}}

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidSyncConfigs)
}
