package hpack

import (
	"bytes"
	"io"
	"sync"

	"github.com/yourusername/hpack/bitio"
)

// huffmanCompress returns the Huffman-coded form of input, padded with the
// high-order bits of the EOS code as draft-09 requires.
func huffmanCompress(input []byte) []byte {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, c := range input {
		entry := huffmanTable[c]
		// WriteBits never fails against a bytes.Buffer target.
		_ = w.WriteBits(uint64(entry.val), entry.len)
	}
	_ = w.Pad(0xff)
	return buf.Bytes()
}

// huffmanNode is a node in the reverse mapping tree used to decode a
// Huffman-coded string one bit at a time.
type huffmanNode struct {
	next [2]*huffmanNode
	leaf bool
	val  uint16
}

func makeHuffmanLayer(prefix uint32, prefixLen byte) *huffmanNode {
	layer := new(huffmanNode)
	found := false
	for i, e := range huffmanTable {
		if e.len < prefixLen+1 {
			continue
		}
		if (e.val >> (e.len - prefixLen)) != prefix {
			continue
		}
		arity := (e.val >> (e.len - prefixLen - 1)) & 1
		if e.len == prefixLen+1 {
			child := &huffmanNode{leaf: true, val: uint16(i)}
			layer.next[arity] = child
			if layer.next[arity^1] != nil {
				return layer
			}
		}
		found = true
	}
	// Parts of the tree are unreachable; leave those branches nil.
	if found {
		if layer.next[0] == nil {
			layer.next[0] = makeHuffmanLayer(prefix<<1, prefixLen+1)
		}
		if layer.next[1] == nil {
			layer.next[1] = makeHuffmanLayer((prefix<<1)|1, prefixLen+1)
		}
	}
	return layer
}

var (
	huffmanDecodeRoot *huffmanNode
	huffmanTreeOnce   sync.Once
)

func huffmanTree() *huffmanNode {
	huffmanTreeOnce.Do(func() {
		huffmanDecodeRoot = makeHuffmanLayer(0, 0)
	})
	return huffmanDecodeRoot
}

// huffmanDecompress expands a Huffman-coded octet string. A bitstream that
// ends mid-code is only valid if every remaining bit is 1, i.e. a prefix of
// the EOS code used to pad the final octet; anything else is malformed.
func huffmanDecompress(input []byte) ([]byte, error) {
	root := huffmanTree()
	r := bitio.NewReader(bytes.NewReader(input))
	cursor := root
	var out bytes.Buffer
	for {
		b, err := r.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		cursor = cursor.next[b]
		if cursor == nil {
			return nil, ErrMalformedString
		}
		if cursor.leaf {
			if cursor.val == huffmanEOS {
				return nil, ErrMalformedString
			}
			out.WriteByte(byte(cursor.val))
			cursor = root
		}
	}
	if cursor != root {
		for n := cursor; ; {
			if n.next[1] == nil {
				return nil, ErrMalformedString
			}
			if n.next[1].leaf {
				if n.next[1].val != huffmanEOS {
					return nil, ErrMalformedString
				}
				break
			}
			n = n.next[1]
		}
	}
	return out.Bytes(), nil
}
