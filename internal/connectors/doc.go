// Package connectors holds the driven-port implementations that talk to
// external APIs. Each connector owns its own HTTP client, pacing, and
// error translation; core services only ever see domain types and
// domain sentinel errors.
package connectors
