package hpack

import (
	"testing"

	"github.com/stvp/assert"
)

func TestSettingsTrackerShrinkIsQueued(t *testing.T) {
	s := newSettingsTracker(4096)
	assert.Nil(t, s.notifySettings(1024))
	assert.Equal(t, []TableCapacity{1024}, s.pending)
}

func TestSettingsTrackerGrowIsAlsoQueued(t *testing.T) {
	s := newSettingsTracker(1024)
	assert.Nil(t, s.notifySettings(4096))
	assert.Equal(t, []TableCapacity{4096}, s.pending)
	assert.Equal(t, TableCapacity(4096), s.appliedMax)
}

func TestSettingsTrackerRejectsZero(t *testing.T) {
	s := newSettingsTracker(4096)
	assert.Equal(t, ErrSettings, s.notifySettings(0))
}

func TestSettingsTrackerRequestCapacityBoundedByPeer(t *testing.T) {
	s := newSettingsTracker(4096)
	assert.Nil(t, s.notifySettings(2048))
	s.pending = nil // the SETTINGS-driven shrink already queued; reset for this check
	s.requestCapacity(4096)
	assert.Equal(t, []TableCapacity{2048}, s.pending)
}

func TestSettingsTrackerDrain(t *testing.T) {
	s := newSettingsTracker(4096)
	s.requestCapacity(1024)
	s.requestCapacity(2048)
	drained := s.drain()
	assert.Equal(t, []TableCapacity{1024, 2048}, drained)
	assert.Equal(t, TableCapacity(2048), s.appliedMax)
	assert.Equal(t, 0, len(s.pending))
}

func TestSettingsTrackerBoundsDecoderUpdate(t *testing.T) {
	s := newSettingsTracker(4096)
	assert.True(t, s.boundsDecoderUpdate(8192))
	assert.Nil(t, s.notifySettings(4096))
	assert.True(t, s.boundsDecoderUpdate(4096))
	assert.True(t, !s.boundsDecoderUpdate(4097))
}
