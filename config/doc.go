// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Environment variables (optionally from a .env file) override the station
// dataset path and the server port.
package config
