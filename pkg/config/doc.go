// Package config provides configuration management for the gfsbuddy
// application.
//
// It wraps other package configuration to provide a single API for
// loading, validating, and writing configuration files in YAML format.
package config
