// Package app wires application dependencies for the CLI.
//
// It builds the file stores, the input download client and the services
// from Config, exposing them via Wire and App for commands to use.
package app
