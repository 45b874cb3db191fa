// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// Calendar bounds are plain YYYY-MM-DD strings and are parsed by the accessors
// on CalendarConfig after validation.
package config
