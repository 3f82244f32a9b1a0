// Package config reads the environment defaults for the command line.
// Flags given on the command line always win over these values.
package config
