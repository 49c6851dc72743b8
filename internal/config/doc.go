// Package config loads interview-tui settings from a TOML file.
//
// A missing file is not an error: Load returns Default(). Command-line flags
// are applied on top of the loaded values by the cmd package. The API key is
// deliberately absent from Config; it only ever lives in the running UI.
package config
