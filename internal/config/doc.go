// Package config provides runtime configuration for ri.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. Environment Variables   │  ← RI_*
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: environment variable loading
//
// # Basic Usage
//
//	cfg := config.Default()
//	if err := cfg.LoadEnv(loader.NewEnvLoader(loader.DefaultPrefix)); err != nil {
//		return err
//	}
//	// flags are applied with cfg.Set
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
//	theme, _ := cfg.Theme()
package config
