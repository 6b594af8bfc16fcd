package ramrsbd

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Device is a Reed-Solomon-protected RAM block device: a byte-addressable
// backing store divided into EraseSize blocks, each holding a whole number
// of n-byte RS codewords. Every ProgAt RS-encodes; every ReadAt RS-decodes
// with error correction. Erase and Sync are no-ops — there is no
// persistence and no wear leveling.
//
// A Device is not safe for concurrent use: its scratch buffers are
// device-wide mutable state. Callers desiring concurrency should either
// create independent Devices or serialize calls with their own lock.
type Device struct {
	cfg Config

	buffer     []byte // EraseSize*EraseCount bytes
	ownsBuffer bool

	c        []byte // code_size scratch: the working codeword
	gen      []byte // ecc_size: generator polynomial, implicit leading 1
	s        []byte // ecc_size: syndrome buffer
	lam      []byte // ecc_size: error-locator Lambda
	omega    []byte // ecc_size: error-evaluator Omega (doubles as BM scratch)
	ownsMath bool

	logger        *log.Logger
	lastCorrected int
}

// NewDevice creates a Device from cfg and any supplied Options. Buffers
// not supplied via WithBuffer/WithMathBuffer are allocated and owned by
// the Device; Close frees exactly the buffers it owns. The backing region
// is zero-filled on create for reproducibility — a zero codeword is a
// valid codeword, so zeroed media decodes cleanly.
func NewDevice(cfg Config, opts ...Option) (*Device, error) {
	validateConfig(cfg)

	var o deviceOptions
	for _, opt := range opts {
		opt(&o)
	}

	d := &Device{cfg: cfg, logger: o.logger}

	needed := cfg.EraseSize * cfg.EraseCount
	if o.buffer != nil {
		assertf(len(o.buffer) >= needed, "supplied buffer too small: have %d need %d", len(o.buffer), needed)
		d.buffer = o.buffer
	} else {
		buf, err := allocate(needed)
		if err != nil {
			return nil, err
		}
		d.buffer = buf
		d.ownsBuffer = true
	}
	for i := range d.buffer[:needed] {
		d.buffer[i] = 0
	}

	mathNeeded := cfg.CodeSize + 4*cfg.ECCSize
	if o.mathBuffer != nil {
		assertf(len(o.mathBuffer) >= mathNeeded, "supplied math buffer too small: have %d need %d", len(o.mathBuffer), mathNeeded)
		m := o.mathBuffer
		d.c = m[0:cfg.CodeSize]
		d.gen = m[cfg.CodeSize : cfg.CodeSize+cfg.ECCSize]
		d.s = m[cfg.CodeSize+cfg.ECCSize : cfg.CodeSize+2*cfg.ECCSize]
		d.lam = m[cfg.CodeSize+2*cfg.ECCSize : cfg.CodeSize+3*cfg.ECCSize]
		d.omega = m[cfg.CodeSize+3*cfg.ECCSize : cfg.CodeSize+4*cfg.ECCSize]
	} else {
		m, err := allocate(mathNeeded)
		if err != nil {
			return nil, err
		}
		d.c = m[0:cfg.CodeSize]
		d.gen = m[cfg.CodeSize : cfg.CodeSize+cfg.ECCSize]
		d.s = m[cfg.CodeSize+cfg.ECCSize : cfg.CodeSize+2*cfg.ECCSize]
		d.lam = m[cfg.CodeSize+2*cfg.ECCSize : cfg.CodeSize+3*cfg.ECCSize]
		d.omega = m[cfg.CodeSize+3*cfg.ECCSize : cfg.CodeSize+4*cfg.ECCSize]
		d.ownsMath = true
	}

	if o.generator != nil {
		assertf(len(o.generator) == cfg.ECCSize, "supplied generator has wrong length: have %d need %d", len(o.generator), cfg.ECCSize)
		copy(d.gen, o.generator)
	} else {
		copy(d.gen, buildGenerator(cfg.ECCSize))
	}

	return d, nil
}

// allocator backs every owned allocation NewDevice makes. It is a package
// variable (rather than make([]byte, n) inlined at each call site) purely
// so tests can swap it out to simulate allocation failure and exercise the
// ErrNoMemory path deterministically.
var allocator = func(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func allocate(n int) ([]byte, error) {
	buf, err := allocator(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMemory, err)
	}
	return buf, nil
}

func validateConfig(cfg Config) {
	assertf(cfg.CodeSize >= 1 && cfg.CodeSize <= 255, "code_size out of range: %d", cfg.CodeSize)
	assertf(cfg.ECCSize >= 0 && cfg.ECCSize <= cfg.CodeSize, "ecc_size out of range: %d", cfg.ECCSize)
	assertf(cfg.EraseSize > 0 && cfg.EraseSize%cfg.CodeSize == 0, "erase_size must be a positive multiple of code_size")
	assertf(cfg.EraseCount > 0, "erase_count must be positive")

	k := cfg.CodeSize - cfg.ECCSize
	if k > 0 {
		assertf(cfg.ReadSize%k == 0, "read_size must be a multiple of message size")
		assertf(cfg.ProgSize%k == 0, "prog_size must be a multiple of message size")
	}

	codewordsPerBlock := cfg.EraseSize / cfg.CodeSize
	blockMessageBytes := cfg.EraseSize - codewordsPerBlock*cfg.ECCSize
	if blockMessageBytes > 0 {
		assertf(cfg.BlockSize%blockMessageBytes == 0, "block_size must be a multiple of the block's message capacity")
	}

	assertf(cfg.ErrorCorrection <= 0 || cfg.ErrorCorrection <= cfg.ECCSize/2,
		"error_correction %d exceeds floor(ecc_size/2) = %d", cfg.ErrorCorrection, cfg.ECCSize/2)
}

// Close releases buffers owned by the Device (those not supplied via
// WithBuffer/WithMathBuffer). It is always safe to call and always
// returns nil.
func (d *Device) Close() error {
	// Buffers are plain Go slices collected by the garbage collector;
	// dropping the references is enough to release what we own.
	if d.ownsBuffer {
		d.buffer = nil
	}
	if d.ownsMath {
		d.c, d.gen, d.s, d.lam, d.omega = nil, nil, nil, nil, nil
	}
	return nil
}

// LastCorrected reports the number of byte errors fixed by the most
// recently completed ReadAt call, reset to 0 at the start of every ReadAt.
func (d *Device) LastCorrected() int {
	return d.lastCorrected
}

// ReadAt decodes size bytes of message-space data starting at off from
// block into dst, one codeword at a time, and returns ErrCorrupt if any
// codeword cannot be corrected within the configured policy. off and size
// are in message-space bytes (multiples of the message size k) and must
// fit within BlockSize; dst must have length size.
func (d *Device) ReadAt(block, off int, dst []byte) error {
	assertf(block >= 0 && block < d.cfg.EraseCount, "block index out of range: %d", block)
	k := d.cfg.messageSize()
	assertf(k > 0 && off%k == 0, "misaligned read offset: %d", off)
	assertf(len(dst)%k == 0, "read size not a multiple of message size: %d", len(dst))
	assertf(off+len(dst) <= d.cfg.BlockSize, "read beyond block_size")

	d.lastCorrected = 0

	size := len(dst)
	for size > 0 {
		offC := (off / k) * d.cfg.CodeSize
		base := block*d.cfg.EraseSize + offC
		copy(d.c, d.buffer[base:base+d.cfg.CodeSize])

		res := decodeCodeword(d.c, d.s, d.lam, d.omega, d.cfg.ErrorCorrection)
		if res.corrupt {
			d.logCorrupt(block, offC, k, res)
			return corruptErr(block, offC, k, corruptReason(res))
		}
		if res.corrected > 0 {
			d.lastCorrected += res.corrected
			d.logCorrected(block, offC, k, res.corrected)
		}

		copy(dst[:k], d.c[:k])
		dst = dst[k:]
		off += k
		size -= k
	}
	return nil
}

func corruptReason(res decodeResult) string {
	switch res.reason {
	case "too many errors", "syndromes nonzero after correction":
		return fmt.Sprintf("%s (found %d, limit %d)", res.reason, res.errors, res.limit)
	default:
		return res.reason
	}
}

func (d *Device) logCorrected(block, off, size, n int) {
	if d.logger == nil {
		return
	}
	d.logger.Info("corrected codeword", "block", block, "off", off, "size", size, "errors", n)
}

func (d *Device) logCorrupt(block, off, size int, res decodeResult) {
	if d.logger == nil {
		return
	}
	d.logger.Warn("uncorrectable codeword", "block", block, "off", off, "size", size,
		"errors", res.errors, "limit", res.limit, "reason", res.reason)
}

// ProgAt RS-encodes size bytes of message-space data from src and writes
// size/k full n-byte codewords to block starting at off. The block must
// have previously been erased; the codeword state of an un-erased region
// is undefined. off and size are in message-space bytes and must fit
// within BlockSize.
func (d *Device) ProgAt(block, off int, src []byte) error {
	assertf(block >= 0 && block < d.cfg.EraseCount, "block index out of range: %d", block)
	k := d.cfg.messageSize()
	assertf(k > 0 && off%k == 0, "misaligned prog offset: %d", off)
	assertf(len(src)%k == 0, "prog size not a multiple of message size: %d", len(src))
	assertf(off+len(src) <= d.cfg.BlockSize, "prog beyond block_size")

	size := len(src)
	for size > 0 {
		offC := (off / k) * d.cfg.CodeSize
		base := block*d.cfg.EraseSize + offC

		encodeCodeword(d.c, src[:k], d.gen)
		copy(d.buffer[base:base+d.cfg.CodeSize], d.c)

		src = src[k:]
		off += k
		size -= k
	}
	return nil
}

// EraseBlock validates block but otherwise does nothing: there is no
// persistence and no wear leveling to simulate.
func (d *Device) EraseBlock(block int) error {
	assertf(block >= 0 && block < d.cfg.EraseCount, "block index out of range: %d", block)
	return nil
}

// Sync does nothing: writes are visible immediately and there is nothing
// to flush.
func (d *Device) Sync() error {
	return nil
}
