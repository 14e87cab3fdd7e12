// Package aoc holds the small helpers shared by the daily units.
//
// Contents
//
//   - ReadInput: read a unit's input file into memory
//   - Lines, Ints, Int: line splitting and integer parsing
//   - MustGet, MustDo: panic on error; malformed puzzle input is never recovered
//   - Pt2: a signed 2D point with 4- and 8-neighbourhoods
//   - GCD, LCM
//
// Nothing here knows about any particular day.
package aoc
