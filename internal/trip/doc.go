// Package trip defines the in-memory trip record filled in by the planner:
// the contact, the travelling group, and the fixed preference tables that
// numbered menu answers are looked up in.
package trip
