// Package app wires a planning session together: it owns the logger, the
// validated configuration and the input/output streams, and runs the
// collector once, reporting the first failure to the user.
package app
