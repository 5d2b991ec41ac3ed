// Package config loads and merges application configuration from
// environment variables, command-line flags, an optional JSON file and
// built-in defaults. Earlier sources win; defaults only fill fields no
// other source has set.
package config
