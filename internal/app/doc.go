// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the logger, the in-memory
// registry and the services on top of it, and exposes them via App for
// commands and the shell to use.
package app
