// Package planner runs the interactive trip form. A Collector asks for the
// group's details, then their preferences, and finally prints a summary of
// the record it filled in. The phases always run in that order and the first
// error stops the session.
package planner
