package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumber(t *testing.T) {
	for _, length := range []int{flightNumberLength, ticketNumberLength} {
		number, err := generateNumber(length)
		require.NoError(t, err)
		assert.Len(t, number, length)
		assert.Regexp(t, `^[A-Z0-9]+$`, number)
	}
}

func TestGenerateNumber_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := generateNumber(ticketNumberLength)
		require.NoError(t, err)
		seen[number] = true
	}
	// 100 draws from a 36^7 space collide with negligible probability
	assert.Greater(t, len(seen), 90)
}

func TestGenerateNumber_DrawsFromWholeAlphabet(t *testing.T) {
	counts := make(map[byte]int)
	for i := 0; i < 2000; i++ {
		number, err := generateNumber(ticketNumberLength)
		require.NoError(t, err)
		for j := 0; j < len(number); j++ {
			counts[number[j]]++
		}
	}
	// 14000 uniform samples hit each of the 36 characters, expected ~390 times
	for i := 0; i < len(numberAlphabet); i++ {
		assert.Positive(t, counts[numberAlphabet[i]], "character %c never drawn", numberAlphabet[i])
	}
}
