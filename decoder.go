package hpack

import (
	"bytes"
	"io"

	"github.com/yourusername/hpack/bitio"
)

// Decoder turns HPACK-coded blocks back into header lists against its own
// dynamic table.
type Decoder struct {
	logged
	table    *dynamicTable
	settings *settingsTracker
}

// NewDecoder creates a decoder whose dynamic table starts at capacity.
func NewDecoder(capacity TableCapacity) *Decoder {
	d := &Decoder{
		table:    newDynamicTable(capacity),
		settings: newSettingsTracker(capacity),
	}
	d.initLogging(nil)
	return d
}

// NotifySettings records the SETTINGS_HEADER_TABLE_SIZE value this side has
// sent to the peer, which bounds every subsequent size-update the peer may
// send (I5), and applies it to the decoder's own table immediately.
func (d *Decoder) NotifySettings(max TableCapacity) error {
	if err := d.settings.notifySettings(max); err != nil {
		return err
	}
	d.table.setCapacity(max)
	return nil
}

func (d *Decoder) readNameValue(r *bitio.Reader, prefix byte) (string, string, error) {
	index, err := readInt(r, prefix)
	if err != nil {
		return "", "", err
	}
	var name string
	if index == 0 {
		name, err = readString(r)
		if err != nil {
			return "", "", err
		}
	} else {
		entry := d.table.get(int(index))
		if entry == nil {
			return "", "", ErrIndexOutOfRange
		}
		name = entry.Name()
	}
	value, err := readString(r)
	if err != nil {
		return "", "", err
	}
	return name, value, nil
}

func (d *Decoder) readIndexed(r *bitio.Reader) (HeaderField, error) {
	index, err := readInt(r, 7)
	if err != nil {
		return HeaderField{}, err
	}
	if index == 0 {
		return HeaderField{}, ErrIndexOutOfRange
	}
	entry := d.table.get(int(index))
	if entry == nil {
		return HeaderField{}, ErrIndexOutOfRange
	}
	return HeaderField{Name: entry.Name(), Value: entry.Value()}, nil
}

func (d *Decoder) readIncremental(r *bitio.Reader) (HeaderField, error) {
	name, value, err := d.readNameValue(r, 6)
	if err != nil {
		return HeaderField{}, err
	}
	d.table.insert(name, value)
	return HeaderField{Name: name, Value: value}, nil
}

func (d *Decoder) readLiteral(r *bitio.Reader) (HeaderField, error) {
	sensitive, err := r.ReadBit()
	if err != nil {
		return HeaderField{}, err
	}
	name, value, err := d.readNameValue(r, 4)
	if err != nil {
		return HeaderField{}, err
	}
	return HeaderField{Name: name, Value: value, Sensitive: sensitive == 1}, nil
}

func (d *Decoder) readCapacity(r *bitio.Reader) (TableCapacity, error) {
	c, err := readInt(r, 5)
	if err != nil {
		return 0, err
	}
	capacity := TableCapacity(c)
	if !d.settings.boundsDecoderUpdate(capacity) {
		return 0, ErrDecoding
	}
	d.table.setCapacity(capacity)
	d.settings.appliedMax = capacity
	return capacity, nil
}

// ReadHeaderBlock decodes a complete HPACK block into a header list. Every
// dynamic-table-size-update must appear before any representation that
// isn't itself a size-update (I6); once a non-size-update representation
// has been read, a later size-update is malformed.
func (d *Decoder) ReadHeaderBlock(block []byte) ([]HeaderField, error) {
	r := bitio.NewReader(bytes.NewReader(block))
	var headers []HeaderField
	sizeUpdatesAllowed := true
	for {
		indexed, err := r.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if indexed == 1 {
			h, err := d.readIndexed(r)
			if err != nil {
				return nil, err
			}
			headers = append(headers, h)
			sizeUpdatesAllowed = false
			continue
		}

		incremental, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if incremental == 1 {
			h, err := d.readIncremental(r)
			if err != nil {
				return nil, err
			}
			headers = append(headers, h)
			sizeUpdatesAllowed = false
			continue
		}

		sizeUpdate, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if sizeUpdate == 1 {
			if !sizeUpdatesAllowed {
				return nil, ErrDecoding
			}
			if _, err := d.readCapacity(r); err != nil {
				return nil, err
			}
			continue
		}

		h, err := d.readLiteral(r)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
		sizeUpdatesAllowed = false
	}
	if err := ValidatePseudoHeaders(headers); err != nil {
		return nil, err
	}
	return headers, nil
}
