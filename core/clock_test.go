package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/aftermath/core"
)

func TestClockTickPositive(t *testing.T) {
	clock := core.NewClock()

	// Even back-to-back ticks must report a strictly positive dt.
	for i := 0; i < 100; i++ {
		assert.Greater(t, clock.Tick(), 0.0)
	}
}

func TestClockTickMeasuresElapsed(t *testing.T) {
	clock := core.NewClock()
	clock.Tick()

	time.Sleep(20 * time.Millisecond)
	dt := clock.Tick()

	assert.GreaterOrEqual(t, dt, 0.015)
	assert.Less(t, dt, 1.0)
}
