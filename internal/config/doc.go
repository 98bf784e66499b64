// Package config loads module configuration from TABPREP_* environment
// variables and an optional tabprep.yaml file, with environment taking
// precedence, and validates the result.
package config
