// Package expr compiles CEL (Common Expression Language) match expressions
// for user-defined date rules.
//
// Expressions are evaluated against a single `date` timestamp variable and
// must return a boolean.
package expr
