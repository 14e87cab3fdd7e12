// Package commands defines the aoc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - aoc [day]             Run one day (day_N, dayN or N), or every day in order
//   - list                  Show each day and whether its input is present
//   - fetch <day>           Download a day's puzzle input
//   - session set <token>   Seal the adventofcode.com session cookie under -p
//   - session fingerprint   Print a short fingerprint of the stored cookie
//
// # Implementation
//
// The root command loads the config, builds the logger and the dependency
// graph (stores, download client, input service, dispatcher) before any
// subcommand runs. Answers go to the command's stdout; logs go to stderr.
// Input paths are relative to the working directory, which is expected to be
// the repository root.
package commands
