package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Pulse_InactiveStaysEmpty(t *testing.T) {
	p := NewPulse()

	for i := 0; i < 20; i++ {
		p.Update()
	}

	assert.False(t, p.IsActive())
	assert.Equal(t, pulseEmpty, p.Frame())
}

func Test_Pulse_BeatsWhileActive(t *testing.T) {
	p := NewPulse()
	p.Start()

	sawFull := false

	for i := 0; i < 40; i++ {
		p.Update()

		if p.Frame() == pulseFull {
			sawFull = true
		}
	}

	assert.True(t, p.IsActive())
	assert.True(t, sawFull, "heartbeat should reach the full frame within a few cycles")
}

func Test_Pulse_StopResets(t *testing.T) {
	p := NewPulse()
	p.Start()

	for i := 0; i < 10; i++ {
		p.Update()
	}

	p.Stop()

	assert.False(t, p.IsActive())
	assert.Equal(t, pulseEmpty, p.Frame())
}
