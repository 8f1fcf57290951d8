// Package summary renders a collected trip record. The text format is the
// human-readable block shown at the end of a session; json and hcl emit the
// same record, plus its ID, for other tools to pick up.
package summary
