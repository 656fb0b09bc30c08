// Package engine evaluates dates against an ordered rule registry with
// first-match-wins semantics, and holds the default Grandfather-Father-Son
// rotation catalogue.
package engine
