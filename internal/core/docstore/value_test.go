package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestValue_Equal verifies kind-aware equality.
func TestValue_Equal(t *testing.T) {
	now := time.Now()

	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, String("a").Equal(String("b")))
	assert.False(t, String("1").Equal(Number(1)))
	assert.True(t, Number(1.5).Equal(Number(1.5)))
	assert.True(t, Boolean(true).Equal(Boolean(true)))
	assert.True(t, Timestamp(now).Equal(Timestamp(now)))
	assert.True(t, Null().Equal(Null()))
}

// TestValue_Compare verifies ordering within and across kinds.
func TestValue_Compare(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, -1, Number(1).Compare(Number(2)))
	assert.Equal(t, 1, Number(2).Compare(Number(1)))
	assert.Equal(t, 0, Number(2).Compare(Number(2)))
	assert.Equal(t, -1, String("a").Compare(String("b")))
	assert.Equal(t, -1, Timestamp(earlier).Compare(Timestamp(later)))
	assert.Equal(t, 1, Timestamp(later).Compare(Timestamp(earlier)))
	// Mixed kinds order by kind, deterministically.
	assert.NotEqual(t, 0, String("1").Compare(Number(1)))
}
