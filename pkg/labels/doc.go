// Package labels implements the pull request labeling rules for labelpr.
// It matches changed file paths against configured filters and computes the
// label changes needed to bring a pull request in line with those filters.
//
// The package includes:
// - Filter and Matcher for path pattern matching
// - Set operations over label names
// - Plan for computing labels to add and remove
//
// Nothing in this package performs I/O.
package labels
