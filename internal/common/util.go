// Package common contains small helpers shared across client layers.
package common

// WipeByteArray zeroes a sensitive buffer, e.g. a password read from the
// terminal, once it is no longer needed.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
