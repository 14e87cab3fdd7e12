// Package fetch downloads puzzle inputs from adventofcode.com.
//
// HTTP API
//
//	GET {base}/{year}/day/{day}/input
//	    Cookie: session=<token>
//	    Returns the raw puzzle input for the logged-in user.
//
// Behaviour
//
//   - A 404 maps to domain.ErrNotFound (day not unlocked yet).
//   - Any other non-2xx status is an error carrying the status line.
//   - No retries. The site asks automated tools to identify themselves, so
//     every request carries the configured User-Agent.
package fetch
