package lock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A booking transaction that runs past lockTTL would let a second instance
// acquire the same key and double-book, so the TTL has to keep a margin
// above the hold bound enforced on the locked section.
func TestRedisLockTTLExceedsHoldTimeout(t *testing.T) {
	assert.Greater(t, lockTTL, HoldTimeout)
}
