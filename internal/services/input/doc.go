// Package input makes sure a unit's puzzle input is on disk.
//
// It resolves the session token (environment first, then the sealed store),
// downloads the input, writes it atomically to the unit's input path and
// records it in the manifest.
package input
