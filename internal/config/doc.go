// Package config defines the application's typed configuration and loads it
// from the environment and an optional config file using viper, validating
// the result before anything else starts.
package config
