// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.DownloadSkew < 0 || cfg.Sync.ReplayRetention < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.JanitorInterval < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
