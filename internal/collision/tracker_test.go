package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabstat/internal/hash"
)

func TestTracker_Track_Distinct(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Track("temp", hash.ID("temp")))
	require.False(t, tracker.Track("humidity", hash.ID("humidity")))
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Track("temp", hash.ID("temp")))
	require.True(t, tracker.Track("temp", hash.ID("temp")))
	require.True(t, tracker.Track("temp", hash.ID("temp")))
}

func TestTracker_Track_SharedID(t *testing.T) {
	tracker := NewTracker()

	// Same ID, different names: both kept, no duplicate reported.
	require.False(t, tracker.Track("temp", 0x1234))
	require.False(t, tracker.Track("humidity", 0x1234))

	require.True(t, tracker.Track("humidity", 0x1234))
	require.True(t, tracker.Track("temp", 0x1234))
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	tracker.Track("a", 1)
	tracker.Track("b", 1)

	tracker.Reset()

	require.False(t, tracker.Track("a", 1))
	require.False(t, tracker.Track("b", 1))
	require.True(t, tracker.Track("a", 1))
}
