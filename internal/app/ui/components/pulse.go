package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseEmpty = "◯"
	pulseFull  = "◉"

	// Spring physics parameters
	pulseAngularFrequency = 8.0
	pulseDampingRatio     = 0.7

	// Heartbeat phase lengths in UI ticks: rest, beat, gap, beat, recovery
	pulseRestTicks     = 2
	pulseBeat1Ticks    = 1
	pulseGapTicks      = 1
	pulseBeat2Ticks    = 1
	pulseRecoveryTicks = 3

	// Spring position threshold for switching frames
	pulseFrameThreshold = 0.3

	pulsePositionFull  = 1.0
	pulsePositionEmpty = 0.0
)

type pulsePhase int

const (
	rest pulsePhase = iota
	beat1
	gap
	beat2
	recovery
)

// Pulse animates the live-tail heartbeat indicator with spring physics.
// While active it cycles a "lub-DUB" cardiac rhythm; stopped it stays empty.
type Pulse struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	tickCount int
	phase     pulsePhase
}

// NewPulse creates a new heartbeat animator
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(UITicksPerSecond), pulseAngularFrequency, pulseDampingRatio),
		phase:  rest,
	}
}

// Start begins the heartbeat animation
func (p *Pulse) Start() {
	p.active = true
}

// Stop ends the animation and resets to the empty frame
func (p *Pulse) Stop() {
	p.active = false
	p.target = pulsePositionEmpty
	p.position = pulsePositionEmpty
	p.velocity = pulsePositionEmpty
	p.tickCount = 0
	p.phase = rest
}

// Update advances the animation by one UI tick
func (p *Pulse) Update() {
	if !p.active {
		return
	}

	p.tickCount++

	switch p.phase {
	case rest:
		p.target = pulsePositionEmpty
		if p.tickCount >= pulseRestTicks {
			p.phase = beat1
			p.target = pulsePositionFull
			p.tickCount = 0
		}

	case beat1:
		p.target = pulsePositionFull
		if p.tickCount >= pulseBeat1Ticks {
			p.phase = gap
			p.target = pulsePositionEmpty
			p.tickCount = 0
		}

	case gap:
		p.target = pulsePositionEmpty
		if p.tickCount >= pulseGapTicks {
			p.phase = beat2
			p.target = pulsePositionFull
			p.tickCount = 0
		}

	case beat2:
		p.target = pulsePositionFull
		if p.tickCount >= pulseBeat2Ticks {
			p.phase = recovery
			p.target = pulsePositionEmpty
			p.tickCount = 0
		}

	case recovery:
		p.target = pulsePositionEmpty
		if p.tickCount >= pulseRecoveryTicks {
			p.phase = rest
			p.tickCount = 0
		}
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
}

// Frame returns the current frame based on the spring position
func (p *Pulse) Frame() string {
	if !p.active || p.position < pulseFrameThreshold {
		return pulseEmpty
	}

	return pulseFull
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// IsActive returns whether the animation is currently running
func (p *Pulse) IsActive() bool {
	return p.active
}
