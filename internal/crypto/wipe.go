package crypto

import "runtime"

// Wipe zeroes b so a decrypted token or derived key does not linger in
// memory longer than needed. Best-effort only.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
