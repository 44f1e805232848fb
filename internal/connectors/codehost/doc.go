// Package codehost implements the code-host port on top of the GitHub
// REST API via go-github. The connector is optional: without a token it
// reports itself unconfigured and refuses every call, so the academic
// side of the system keeps working on its own.
package codehost
