// Package config provides configuration loading, merging, and validation
// for the storefront server.
//
// Configuration is assembled from several sources. For every field the first
// source with a non-zero value wins:
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
