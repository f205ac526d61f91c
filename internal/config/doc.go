// Package config provides configuration loading, merging, and validation
// for the pol command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields that no source sets take the defaults of [GetStructuredConfig].
package config
