// Package config loads and validates querykit application configuration.
//
// It uses Viper to merge a YAML config file, an optional .env file and
// prefixed environment variables, with explicitly set command-line flags
// taking precedence over all of them.
//
// # Usage
//
//	cfg, err := config.Load(
//		config.WithEnvPrefix("QUERYDEMO"),
//		config.WithFlag("dataset.path", flags.Lookup("dataset")),
//	)
//
// QUERYDEMO_LOGGING_LEVEL=debug overrides logging.level from the file.
package config
