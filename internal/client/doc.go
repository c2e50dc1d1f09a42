// Package client hosts the terminal client application shell: it owns the
// lifecycle of the TUI session against the deployment configuration server.
package client
