package ramrsbd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeCodewordPreservesMessage(t *testing.T) {
	gen := buildGenerator(4)
	msg := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B}
	c := make([]byte, len(msg)+len(gen))
	encodeCodeword(c, msg, gen)
	require.Equal(t, msg, c[:len(msg)])
}

func TestEncodeCodewordHasZeroSyndromes(t *testing.T) {
	gen := buildGenerator(4)
	msg := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B}
	c := make([]byte, len(msg)+len(gen))
	encodeCodeword(c, msg, gen)

	s := make([]byte, len(gen))
	findSyndromes(s, c)
	require.True(t, allZero(s))
}

func TestEncodeCodewordZeroECCIsPassthrough(t *testing.T) {
	gen := buildGenerator(0)
	msg := []byte{0xAA, 0xBB, 0xCC}
	c := make([]byte, len(msg))
	encodeCodeword(c, msg, gen)
	require.Equal(t, msg, c)
}
