package service

import (
	"crypto/rand"
	"fmt"
)

const (
	numberAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	flightNumberLength = 6
	ticketNumberLength = 7

	// maxNumberAttempts bounds the collision-retry loop on inserts
	maxNumberAttempts = 5
)

// maxRandomByte is the largest multiple of the alphabet size below 256;
// bytes at or above it are rejected so every character is equally likely
const maxRandomByte = 256 - 256%len(numberAlphabet)

// generateNumber returns a random identifier of the given length drawn
// uniformly from the uppercase alphanumeric alphabet
func generateNumber(length int) (string, error) {
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxRandomByte {
				continue
			}
			out = append(out, numberAlphabet[int(b)%len(numberAlphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
