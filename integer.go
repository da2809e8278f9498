package hpack

import "github.com/yourusername/hpack/bitio"

// maxInteger bounds every HPACK integer this codec will decode. draft-09
// leaves the bound to implementations; this codec rejects anything that
// would not fit in 31 bits, which comfortably covers every table index,
// capacity, and string length a conforming peer should ever send.
const maxInteger = 1<<31 - 1

// writeInt writes p as an HPACK integer using the given prefix length (the
// number of bits of the current octet available before the continuation
// scheme kicks in).
func writeInt(w *bitio.Writer, p uint64, prefix byte) error {
	ones := (uint64(1) << prefix) - 1
	if p < ones {
		return w.WriteBits(p, prefix)
	}
	if err := w.WriteBits(ones, prefix); err != nil {
		return err
	}
	p -= ones
	for {
		b := byte(p & 0x7f)
		p >>= 7
		if p > 0 {
			b |= 0x80
		}
		if err := w.WriteByte(b); err != nil {
			return err
		}
		if p == 0 {
			return nil
		}
	}
}

// readInt reads an HPACK integer with the given prefix length, rejecting
// any value that would exceed maxInteger or that is truncated.
func readInt(r *bitio.Reader, prefix byte) (uint64, error) {
	v, err := r.ReadBits(prefix)
	if err != nil {
		return 0, ErrMalformedInteger
	}
	if v < ((1 << prefix) - 1) {
		return v, nil
	}

	for s := uint(0); ; s += 7 {
		b, err := r.ReadBits(8)
		if err != nil {
			return 0, ErrMalformedInteger
		}
		v += (b & 0x7f) << s
		if v > maxInteger {
			return 0, ErrMalformedInteger
		}
		if (b & 0x80) == 0 {
			return v, nil
		}
	}
}
