//go:build unit

package clock_test

import (
	"testing"
	"time"

	"petstore-backend/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	// 2025-01-10 23:30 UTC is already 2025-01-11 in Tokyo
	c := clock.NewMockClock(time.Date(2025, 1, 10, 23, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), clock.Today(c, nil))
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), clock.Today(c, time.UTC))

	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), clock.Today(c, tokyo))

	c.Add(time.Hour)
	assert.Equal(t, time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), clock.Today(c, time.UTC))
}
