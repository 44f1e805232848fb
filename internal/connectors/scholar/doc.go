// Package scholar implements the AcademicGraph port against the
// Semantic Scholar Graph API.
//
// The client issues exactly one network call per operation and applies
// a fixed pacing delay after every call completes (failures included)
// before the next call may start. This is a conservative global pacing
// policy rather than a token bucket: the upstream allows roughly 1
// request per second with an API key and far less without one, and
// pacing unconditionally avoids bursting on retry. The client itself
// never retries; every failure is terminal for that call.
package scholar
