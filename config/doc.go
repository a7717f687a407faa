// Package config loads the defaults used by the hypernest command: path-search
// parameters plus the runtime environment and log level.
//
// Sources, lowest precedence first:
//
//  1. Default() values (tau 0.05, three hops, collect all, 6-decimal dedup,
//     development environment, debug logging).
//  2. An optional YAML file.
//  3. A .env file; it only fills variables that are not already set and a
//     missing file is ignored.
//  4. HYPERNEST_* environment variables:
//     HYPERNEST_ENV, HYPERNEST_LOG_LEVEL, HYPERNEST_TAU, HYPERNEST_MAX_HOPS,
//     HYPERNEST_COLLECT_ALL, HYPERNEST_DEDUP_PRECISION.
//
// Load validates the merged result; Validate can be called again after
// command-line overrides.
package config
