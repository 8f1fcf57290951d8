// Package config loads the optional HCL settings file. The file only holds
// ambient options (logging and summary format); every field is optional and
// an empty value means "not set here".
package config
