// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and connectors implement them.
//
//   - AcademicGraph: paper and author lookups against the academic graph
//   - CodeHost: developer profiles and activity from the code host
//
// The code host is optional: an unconfigured implementation must still
// satisfy the interface and report its state via Configured.
package driven
