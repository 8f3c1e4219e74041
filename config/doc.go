// Package config loads the drills server configuration.
//
// Load layers four sources, each overriding the one before it: built-in
// defaults, YAML files (merged left to right), DRILLS_* environment
// variables and explicitly set command-line flags. Nested keys become
// environment variables by upper-casing and replacing dots with
// underscores, so lotto.seed is read from DRILLS_LOTTO_SEED and
// metrics.path from DRILLS_METRICS_PATH.
//
// A minimal file:
//
//	server:
//	  port: 8000
//	lotto:
//	  seed: 42        # fixed draw sequence; 0 seeds from the clock
//	metrics:
//	  enabled: true
//	  path: /metrics
//	log:
//	  level: debug
//
// The result is checked with go-playground/validator struct tags before it
// is returned. The server binary stores it on the command context with
// WithContext so subcommands can fetch it with FromContext.
package config
