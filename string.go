package hpack

import (
	"io"

	"github.com/yourusername/hpack/bitio"
)

// HuffmanCodingChoice controls whether a literal string is Huffman-coded.
type HuffmanCodingChoice byte

const (
	// HuffmanCodingAuto uses Huffman coding only when it does not grow the
	// string, which is what an encoder should do absent an explicit
	// override.
	HuffmanCodingAuto = HuffmanCodingChoice(iota)
	// HuffmanCodingAlways forces Huffman coding regardless of size.
	HuffmanCodingAlways
	// HuffmanCodingNever forces the raw octet encoding.
	HuffmanCodingNever
)

// writeStringRaw writes s as an HPACK string literal under the given
// Huffman policy.
func writeStringRaw(w *bitio.Writer, s string, huffman HuffmanCodingChoice) error {
	raw := []byte(s)
	payload := raw
	hbit := byte(0)
	if huffman != HuffmanCodingNever {
		coded := huffmanCompress(raw)
		if huffman == HuffmanCodingAlways || len(coded) < len(raw) {
			payload = coded
			hbit = 1
		}
	}
	if err := w.WriteBit(hbit); err != nil {
		return err
	}
	if err := writeInt(w, uint64(len(payload)), 7); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// writeString writes s using the automatic Huffman policy.
func writeString(w *bitio.Writer, s string) error {
	return writeStringRaw(w, s, HuffmanCodingAuto)
}

// readString reads an HPACK string literal, undoing Huffman coding when the
// H bit is set.
func readString(r *bitio.Reader) (string, error) {
	huffman, err := r.ReadBit()
	if err != nil {
		return "", ErrMalformedString
	}
	length, err := readInt(r, 7)
	if err != nil {
		return "", err
	}
	raw := make([]byte, length)
	if _, err := io.ReadFull(r, raw); err != nil {
		return "", ErrMalformedString
	}
	if huffman == 0 {
		return string(raw), nil
	}
	decoded, err := huffmanDecompress(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
