package app

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newID creates a short random hex ID for meals and profiles.
func newID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// Fallback -- should never happen.
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
