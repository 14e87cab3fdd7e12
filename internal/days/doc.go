// Package days is the dispatch table for the daily units.
//
// Every unit is listed once, in day order, in Units. A Runner executes one
// unit by name or all of them in sequence, writing answers to its Out
// writer and diagnostics to its logger. Units share nothing but the
// input helper in internal/aoc.
package days
