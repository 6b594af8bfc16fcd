package ramrsbd

import (
	"errors"
	"fmt"
)

// ErrCorrupt is returned by ReadAt when a codeword has more byte errors
// than the configured error-correction policy allows, or when correction
// was attempted and the corrected codeword still fails verification.
var ErrCorrupt = errors.New("ramrsbd: corrupt")

// ErrNoMemory is returned by NewDevice when an owned allocation fails.
var ErrNoMemory = errors.New("ramrsbd: out of memory")

func corruptErr(block, off, size int, reason string) error {
	return fmt.Errorf("%w: block %d off %d size %d: %s", ErrCorrupt, block, off, size, reason)
}

// assertf panics with a formatted message. Used for contract violations —
// misaligned offsets, out-of-range block indices, malformed configuration —
// which are programmer errors, not data errors, and are not expected to be
// recovered from in production.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("ramrsbd: "+format, args...))
	}
}
