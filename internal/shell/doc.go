// Package shell is the interactive front end: a numbered menu that prompts
// for input, calls the registry services and prints the outcome.
package shell
