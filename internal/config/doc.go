// Package config loads the przepisnik client configuration.
//
// Load reads ~/.config/przepisnik/config.toml unless another path is given.
// A missing file is not an error: every field has a default, and blank
// values fall back to it as well.
//
//	api_url = "http://127.0.0.1:8080"
//	log_dir = "~/.local/share/przepisnik"
//	log_level = "info"
//	timeout_seconds = 10
//
// Paths beginning with ~ are expanded against the home directory. The
// PRZEPISNIK_API_URL environment variable overrides api_url; the --api flag
// is applied by the caller on top of both.
package config
