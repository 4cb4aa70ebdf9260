package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateUniqueHash produces a unique hexadecimal identifier for component
// metadata, derived from the current time and random data.
func GenerateUniqueHash() string {
	// Combine the current time and random data for the hash input
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16) // 128 bits of random data
	_, err := rand.Read(randomBytes)
	if err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)

	hash := sha256.Sum256(hashInput)

	return hex.EncodeToString(hash[:])
}
