// Package driving defines the interfaces through which the outside world
// (the CLI) drives the core.
package driving
