package hpack

// settingsTracker mirrors a peer's SETTINGS_HEADER_TABLE_SIZE value against
// the encoder's own wish to shrink the table, and queues the resulting
// dynamic-table-size-update directives for the next block the encoder
// writes (draft-09 section 4.2). Two independent capacity desires feed it:
// the peer's advertised maximum (via NotifySettings) and a caller-driven
// request to shrink further (via requestCapacity); whichever is more
// restrictive wins.
type settingsTracker struct {
	// appliedMax is the capacity currently in effect on the owning table.
	appliedMax TableCapacity
	// lastSettingsMax is the most recent value received via NotifySettings;
	// meaningless until receivedSettings is true.
	lastSettingsMax  TableCapacity
	receivedSettings bool
	// pending holds capacities queued for the next header block, oldest
	// first.
	pending []TableCapacity
}

func newSettingsTracker(initial TableCapacity) *settingsTracker {
	return &settingsTracker{appliedMax: initial}
}

// notifySettings records a new SETTINGS_HEADER_TABLE_SIZE value from the
// peer. The new maximum is queued unconditionally, grow or shrink, so the
// next block emits the size update before any literal representations, and
// it takes effect on the owning table immediately (draft-09 section 4.2).
func (s *settingsTracker) notifySettings(max TableCapacity) error {
	if max == 0 {
		return ErrSettings
	}
	s.lastSettingsMax = max
	s.receivedSettings = true
	s.appliedMax = max
	s.queue(max)
	return nil
}

// requestCapacity is the caller's own request to change the table size,
// bounded above by the last SETTINGS value received (an encoder may never
// grow the table past what the peer can hold).
func (s *settingsTracker) requestCapacity(c TableCapacity) {
	if s.receivedSettings && c > s.lastSettingsMax {
		c = s.lastSettingsMax
	}
	s.queue(c)
}

func (s *settingsTracker) queue(c TableCapacity) {
	s.pending = append(s.pending, c)
}

// drain returns the queued capacities in order and clears the queue. The
// encoder calls this once at the start of each Compress call.
func (s *settingsTracker) drain() []TableCapacity {
	if len(s.pending) == 0 {
		return nil
	}
	p := s.pending
	s.pending = nil
	s.appliedMax = p[len(p)-1]
	return p
}

// boundsDecoderUpdate reports whether a dynamic-table-size-update value
// received over the wire respects the bound this side announced via
// SETTINGS (I5): once a SETTINGS value has been sent, the peer may never
// set a capacity larger than it.
func (s *settingsTracker) boundsDecoderUpdate(c TableCapacity) bool {
	if !s.receivedSettings {
		return true
	}
	return c <= s.lastSettingsMax
}
