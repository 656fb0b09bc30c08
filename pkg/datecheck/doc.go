// Package datecheck provides the catalogue of date predicates used to drive
// tape-rotation schedules, plus week-of-month and weekday-name helpers.
//
// Weekday numbering is Monday=0 through Sunday=6 throughout, matching the
// convention of the original GFS rotation tables.
package datecheck
