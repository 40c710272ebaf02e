package salenumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_Format(t *testing.T) {
	g := NewDateRandom()
	g.now = func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) }

	code := g.Next()
	require.Len(t, code, len("SALE-20260115-")+8)
	assert.Regexp(t, `^SALE-20260115-[0-9A-F]{8}$`, code)
}

func TestNext_Unique(t *testing.T) {
	g := NewDateRandom()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := g.Next()
		assert.False(t, seen[code], "duplicate sale number %s", code)
		seen[code] = true
	}
}
