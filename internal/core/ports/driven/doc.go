// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - Tables: header-verified delimited row files (the snapshot inputs and
//     the update/error outputs)
//   - ConfigStore: organisation identity and run defaults
package driven
