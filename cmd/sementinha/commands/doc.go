// Package commands defines the sementinha CLI and wires dependencies for subcommands.
//
// Commands
//
//   - shell    Interactive menu over a fresh in-memory registry
//   - run      Execute a file of menu answers non-interactively
//   - demo     Seed a sample organization, campaign and donations and report
//   - unseal   Decrypt a sealed export artifact
//
// # Implementation
//
// The root command loads configuration (environment, optional .env) and builds
// the logger, registry and services before any subcommand runs. The registry
// lives only as long as the process; exports are the only output that
// outlives it.
package commands
