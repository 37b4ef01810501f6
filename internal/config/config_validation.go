// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged configuration satisfies all
// invariants before it is used at startup. It runs after defaults have been
// applied, so empty groups cannot occur unless a source supplied a negative
// or otherwise unusable value.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 ||
		cfg.Workers.PresenceInterval <= 0 ||
		cfg.Workers.DirectoryInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
