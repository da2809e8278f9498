package hpack

import (
	"bytes"

	"github.com/yourusername/hpack/bitio"
)

// dontIndex names header fields whose values are typically unique or
// change on every request, so adding them to the dynamic table would only
// waste table space without improving compression (draft-09 offers no
// fixed list; this mirrors the set of highly-variable fields HTTP/1
// implementations commonly special-case).
var dontIndex = map[string]bool{
	":path":               true,
	"content-length":      true,
	"content-range":       true,
	"date":                true,
	"expires":             true,
	"etag":                true,
	"if-modified-since":   true,
	"if-range":            true,
	"if-unmodified-since": true,
	"last-modified":       true,
	"link":                true,
	"range":               true,
	"referer":             true,
	"refresh":             true,
}

// Encoder turns header lists into HPACK-coded blocks against its own
// dynamic table, tracking the peer's advertised table size via settings.
type Encoder struct {
	logged
	table    *dynamicTable
	settings *settingsTracker

	// Huffman controls string coding; HuffmanCodingAuto is the sane default.
	Huffman HuffmanCodingChoice

	// indexPrefs overrides dontIndex on a per-name basis.
	indexPrefs map[string]bool
}

// NewEncoder creates an encoder whose dynamic table starts at capacity.
func NewEncoder(capacity TableCapacity) *Encoder {
	e := &Encoder{
		table:    newDynamicTable(capacity),
		settings: newSettingsTracker(capacity),
	}
	e.initLogging(nil)
	return e
}

// SetIndexPreference overrides dontIndex for a single header name: true
// always allows indexing, false always forbids it.
func (e *Encoder) SetIndexPreference(name string, pref bool) {
	e.logger.Printf("set indexing pref for %v to %v", name, pref)
	if e.indexPrefs == nil {
		e.indexPrefs = make(map[string]bool)
	}
	e.indexPrefs[name] = pref
}

// ClearIndexPreference removes a prior SetIndexPreference override.
func (e *Encoder) ClearIndexPreference(name string) {
	e.logger.Printf("clear indexing pref for %v", name)
	delete(e.indexPrefs, name)
}

// NotifySettings applies a new SETTINGS_HEADER_TABLE_SIZE value received
// from the peer: the table's capacity changes immediately, grow or shrink,
// and the size update is queued to be signalled on the wire with the next
// WriteHeaderBlock call.
func (e *Encoder) NotifySettings(max TableCapacity) error {
	if err := e.settings.notifySettings(max); err != nil {
		return err
	}
	e.table.setCapacity(max)
	return nil
}

// SetCapacity requests a table capacity. Shrinks queue immediately; growth
// is capped by whatever SETTINGS value the peer last announced.
func (e *Encoder) SetCapacity(c TableCapacity) {
	e.settings.requestCapacity(c)
}

func (e *Encoder) shouldIndex(h HeaderField) bool {
	if h.size() > e.table.capacity {
		return false
	}
	if pref, ok := e.indexPrefs[h.Name]; ok {
		return pref
	}
	return !dontIndex[h.Name]
}

func (e *Encoder) writeCapacityChange(w *bitio.Writer, c TableCapacity) error {
	if err := w.WriteBits(1, 3); err != nil {
		return err
	}
	return writeInt(w, uint64(c), 5)
}

func (e *Encoder) writeNameValue(w *bitio.Writer, h HeaderField, nameIndex int, prefix byte) error {
	if err := writeInt(w, uint64(nameIndex), prefix); err != nil {
		return err
	}
	if nameIndex == 0 {
		if err := writeStringRaw(w, h.Name, e.Huffman); err != nil {
			return err
		}
	}
	return writeStringRaw(w, h.Value, e.Huffman)
}

func (e *Encoder) writeIndexed(w *bitio.Writer, index int) error {
	if err := w.WriteBit(1); err != nil {
		return err
	}
	return writeInt(w, uint64(index), 7)
}

func (e *Encoder) writeIncremental(w *bitio.Writer, h HeaderField, nameIndex int) error {
	if err := w.WriteBits(1, 2); err != nil {
		return err
	}
	if err := e.writeNameValue(w, h, nameIndex, 6); err != nil {
		return err
	}
	e.table.insert(h.Name, h.Value)
	return nil
}

func (e *Encoder) writeLiteral(w *bitio.Writer, h HeaderField, nameIndex int) error {
	code := uint64(0)
	if h.Sensitive {
		code = 1
	}
	if err := w.WriteBits(code, 4); err != nil {
		return err
	}
	return e.writeNameValue(w, h, nameIndex, 4)
}

// WriteHeaderBlock encodes headers as a single HPACK block, first draining
// any queued dynamic-table-size-update directives.
func (e *Encoder) WriteHeaderBlock(headers []HeaderField) ([]byte, error) {
	if err := ValidatePseudoHeaders(headers); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	for _, c := range e.settings.drain() {
		e.table.setCapacity(c)
		if err := e.writeCapacityChange(w, c); err != nil {
			return nil, err
		}
	}

	for _, h := range headers {
		if h.Name == "" {
			return nil, ErrInvalidHeader
		}
		var err error
		if h.Sensitive {
			// Never consult or mutate the table for a sensitive field,
			// including for its name: always a literal with index 0.
			err = e.writeLiteral(w, h, 0)
		} else if full := e.table.findFull(h.Name, h.Value); full != 0 {
			err = e.writeIndexed(w, full)
		} else if e.shouldIndex(h) {
			err = e.writeIncremental(w, h, e.table.findName(h.Name))
		} else {
			err = e.writeLiteral(w, h, e.table.findName(h.Name))
		}
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
