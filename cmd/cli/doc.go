// Package cli assembles the copycheck command-line application.
//
// It wires the Cobra root command, Viper-backed configuration loading, and
// zap logging, and registers the check command that validates and repairs
// copyright headers.
package cli
