package hpack

import "errors"

// ErrInvalidHeader is returned by Compress when a header field in the input
// list has an empty name.
var ErrInvalidHeader = errors.New("hpack: invalid header field")

// ErrSettings is returned by NotifySettings for a non-positive capacity.
var ErrSettings = errors.New("hpack: invalid SETTINGS_HEADER_TABLE_SIZE value")

// ErrEncoding covers internal encoder invariant violations, such as an
// indexed emission computed against an index that turned out not to exist.
var ErrEncoding = errors.New("hpack: encoder could not represent header field")

// ErrMalformedInteger is returned by the decoder when an HPACK integer is
// truncated or overflows the 31-bit range this codec accepts.
var ErrMalformedInteger = errors.New("hpack: malformed integer")

// ErrMalformedString is returned by the decoder when a length-prefixed
// string is truncated or its Huffman encoding is invalid.
var ErrMalformedString = errors.New("hpack: malformed string literal")

// ErrIndexOutOfRange is returned when a representation references an index
// that does not exist in the combined static+dynamic table, or references
// index 0 where that is invalid (Indexed representation).
var ErrIndexOutOfRange = errors.New("hpack: index out of range")

// ErrPseudoHeaderOrdering is returned when a pseudo-header field (name
// beginning with ':') follows a regular header field in a header list.
var ErrPseudoHeaderOrdering = errors.New("hpack: pseudo-header field ordering")

// ErrDecoding is the umbrella decode-time error: a dynamic-table-size-update
// that violates the bound the peer announced via SETTINGS, or one received
// anywhere but the start of a block.
var ErrDecoding = errors.New("hpack: malformed header block")
