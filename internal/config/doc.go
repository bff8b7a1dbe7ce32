// Package config handles configuration loading, parsing, and validation
// from various sources (.env file, config file, environment variables). It
// provides type-safe access to the settings needed by the generation backend,
// the excuse repositories and the server, while keeping configuration details
// separate from business logic.
//
// Settings are read once by the composition root and are never mutated while
// requests are being handled.
package config
