// Package config loads application configuration for the command line
// tools from a YAML file with an optional .env overlay.
//
// Lookup order is ./preach.yaml, then ~/.config/preach/config.yaml, then
// built-in defaults for a local OpenAI-compatible setup. API tokens are
// never stored in the file; the token_env field names the environment
// variable to read instead.
package config
