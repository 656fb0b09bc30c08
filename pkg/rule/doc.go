// Package rule defines named, enableable date-classification rules and the
// ordered registry they are evaluated from.
//
// A rule pairs a predicate over a calendar date with a message. Built-in
// rules use predicates from pkg/datecheck; user-defined rules compile a CEL
// match expression instead.
package rule
