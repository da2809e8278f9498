package hpack

// defaultTableCapacity is used by NewCodec when the caller passes 0,
// matching HTTP/2's own SETTINGS_HEADER_TABLE_SIZE default.
const defaultTableCapacity TableCapacity = 4096

// Codec is the convenience facade most callers use: a single encoder and
// decoder pair sharing one capacity, covering both directions of a
// connection's header compression.
type Codec struct {
	Encoder *Encoder
	Decoder *Decoder
}

// NewCodec creates a Codec whose encoder and decoder dynamic tables both
// start at capacity (or defaultTableCapacity, if capacity is 0).
func NewCodec(capacity TableCapacity) *Codec {
	if capacity == 0 {
		capacity = defaultTableCapacity
	}
	return &Codec{
		Encoder: NewEncoder(capacity),
		Decoder: NewDecoder(capacity),
	}
}

// NotifySettings applies a SETTINGS_HEADER_TABLE_SIZE value to both sides:
// the encoder's and the decoder's tables take the new capacity at once,
// grow or shrink, the encoder queues a size-update for its next block, and
// the decoder rejects any later size-update above this value.
func (c *Codec) NotifySettings(max TableCapacity) error {
	if err := c.Encoder.NotifySettings(max); err != nil {
		return err
	}
	return c.Decoder.NotifySettings(max)
}

// Compress encodes a header list into a single HPACK block.
func (c *Codec) Compress(headers []HeaderField) ([]byte, error) {
	return c.Encoder.WriteHeaderBlock(headers)
}

// Decompress decodes a single HPACK block, reassembling any split cookie
// header fields back into one.
func (c *Codec) Decompress(block []byte) ([]HeaderField, error) {
	headers, err := c.Decoder.ReadHeaderBlock(block)
	if err != nil {
		return nil, err
	}
	return ReassembleCookies(headers), nil
}

// Close releases nothing today; it exists so Codec satisfies io.Closer for
// callers that manage codecs alongside other closeable connection state.
func (c *Codec) Close() error {
	return nil
}
