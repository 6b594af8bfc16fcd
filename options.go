package ramrsbd

import "github.com/charmbracelet/log"

// Config describes the shape of a Device: codeword and erase geometry, and
// the host filesystem's view of read/prog/block sizes in message-space
// bytes (see Device for the message-space -> codeword-space translation).
type Config struct {
	// CodeSize is the codeword size in bytes, n. 1 <= CodeSize <= 255.
	CodeSize int

	// ECCSize is the parity size in bytes, n-k. 0 <= ECCSize <= CodeSize.
	ECCSize int

	// EraseSize is the size of one erase block in bytes. Must be a
	// positive multiple of CodeSize.
	EraseSize int

	// EraseCount is the number of erase blocks on the device.
	EraseCount int

	// ErrorCorrection caps the number of byte errors a read will try to
	// correct. 0 means "correct up to floor(ECCSize/2)", a positive value
	// caps the per-codeword correction count (and anything beyond it is
	// reported as ErrCorrupt even if it was otherwise correctable), -1
	// disables correction and treats any nonzero syndrome as ErrCorrupt.
	ErrorCorrection int

	// ReadSize, ProgSize and BlockSize are the host filesystem's view of
	// this device, expressed in message-space bytes (multiples of
	// CodeSize-ECCSize).
	ReadSize  int
	ProgSize  int
	BlockSize int
}

// messageSize returns k = n - (n-k).
func (c Config) messageSize() int {
	return c.CodeSize - c.ECCSize
}

// Option configures optional collaborators of a Device: caller-owned
// buffers and a caller-supplied generator polynomial or logger. None of
// these are required; NewDevice allocates and computes whatever an Option
// doesn't supply.
type Option func(*deviceOptions)

type deviceOptions struct {
	buffer     []byte
	mathBuffer []byte
	generator  []byte
	logger     *log.Logger
}

// WithBuffer supplies the backing RAM region (EraseSize*EraseCount bytes)
// instead of having NewDevice allocate and own it. The caller retains
// ownership; Close will not free it.
func WithBuffer(buf []byte) Option {
	return func(o *deviceOptions) { o.buffer = buf }
}

// WithMathBuffer supplies one contiguous scratch buffer of size
// CodeSize + 4*ECCSize for the device's internal math (the codeword,
// generator polynomial, syndrome, error-locator and error-evaluator
// buffers), instead of having NewDevice allocate and own one. The caller
// retains ownership; Close will not free it.
func WithMathBuffer(buf []byte) Option {
	return func(o *deviceOptions) { o.mathBuffer = buf }
}

// WithGenerator supplies a precomputed generator polynomial (length
// ECCSize, implicit leading 1) instead of having NewDevice compute one at
// create time. Useful when many devices share the same (CodeSize, ECCSize)
// and the generator is computed once and reused.
func WithGenerator(gen []byte) Option {
	return func(o *deviceOptions) { o.generator = gen }
}

// WithLogger attaches a logger used to report correctable and
// uncorrectable data errors encountered on ReadAt. If omitted, the device
// logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(o *deviceOptions) { o.logger = l }
}
