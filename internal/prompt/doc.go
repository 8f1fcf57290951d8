// Package prompt asks questions on an output stream and reads one-line
// answers from an input stream. Numeric answers are parsed here, so callers
// receive either a typed value or a *ParseError naming the question.
package prompt
