package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatPlan(t *testing.T) {
	tests := []struct {
		capacity int
		expected int
	}{
		{0, 0},
		{1, 1},
		{19, 19},
		{20, 20},
		{133, 133},
		{134, 133},
		{500, 133},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("capacity %d", tt.capacity), func(t *testing.T) {
			seats := seatPlan("AB12C3", tt.capacity)
			assert.Len(t, seats, tt.expected)
		})
	}
}

func TestSeatPlan_LabelMajorOrder(t *testing.T) {
	seats := seatPlan("AB12C3", 40)
	require.Len(t, seats, 40)

	assert.Equal(t, "A", seats[0].Seatlabel)
	assert.Equal(t, 1, seats[0].Seatrow)
	assert.Equal(t, "A", seats[18].Seatlabel)
	assert.Equal(t, 19, seats[18].Seatrow)
	assert.Equal(t, "B", seats[19].Seatlabel)
	assert.Equal(t, 1, seats[19].Seatrow)
	assert.Equal(t, "C", seats[38].Seatlabel)
	assert.Equal(t, 1, seats[38].Seatrow)

	for _, seat := range seats {
		assert.Equal(t, "AB12C3", seat.Flightnumber)
		assert.Nil(t, seat.Ticketnumber)
		assert.False(t, seat.Checkedin)
	}
}

func TestSeatPlan_FullGrid(t *testing.T) {
	seats := seatPlan("AB12C3", MaxSeatsPerFlight)
	require.Len(t, seats, 133)

	last := seats[len(seats)-1]
	assert.Equal(t, "G", last.Seatlabel)
	assert.Equal(t, 19, last.Seatrow)

	// no duplicate positions
	seen := make(map[string]bool)
	for _, seat := range seats {
		key := fmt.Sprintf("%s%d", seat.Seatlabel, seat.Seatrow)
		assert.False(t, seen[key], "duplicate seat %s", key)
		seen[key] = true
	}
}
