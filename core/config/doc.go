// Package config provides configuration management for Bloom.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections owned by their packages:
//   - Server: HTTP server settings (port, API key)
//   - Database: SQLite/MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: logging level and format
//   - Coach: generative AI credentials and model
//
// Defaults come from `default` struct tags, bound recursively through
// reflection so every key is registered with AutomaticEnv.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
