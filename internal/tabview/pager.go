package tabview

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Pager commits a decided index change by driving the position cells toward
// the new rest state. Start captures the transition, Step advances it one
// frame and reports whether the cells are at rest. Implementations are chosen
// once at construction and injected into the host model.
type Pager interface {
	Start(pos *PositionModel, fromIndex, toIndex int, width int)
	Step(pos *PositionModel) bool
}

const (
	defaultSpringFrequency = 7.0
	defaultSpringDamping   = 1.0

	// Cell distances below this are visually zero, so the spring snaps.
	restThreshold = 0.05
)

// SpringPager animates transitions with a damped spring. The committed offset
// is written immediately on Start; continuity is preserved by loading the
// displacement into pan, which then decays to zero over the following frames.
type SpringPager struct {
	spring   harmonica.Spring
	velocity float64
	active   bool
}

func NewSpringPager(fps int, frequency, damping float64) *SpringPager {
	if fps <= 0 {
		fps = 60
	}
	if frequency <= 0 {
		frequency = defaultSpringFrequency
	}
	if damping <= 0 {
		damping = defaultSpringDamping
	}

	return &SpringPager{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (p *SpringPager) Start(pos *PositionModel, fromIndex, toIndex int, width int) {
	// Commit the offset for the target index and move the displacement the
	// viewer currently sees into pan, so the derived position is unchanged at
	// the instant of commit.
	pos.SetOffset(-float64(toIndex) * float64(width))
	pos.SetPan(pos.Pan() + float64(toIndex-fromIndex)*float64(width))

	p.velocity = 0
	p.active = true
}

func (p *SpringPager) Step(pos *PositionModel) bool {
	if !p.active {
		return true
	}

	pan, velocity := p.spring.Update(pos.Pan(), p.velocity, 0)
	if math.Abs(pan) < restThreshold && math.Abs(velocity) < restThreshold {
		pos.SetPan(0)
		p.velocity = 0
		p.active = false

		return true
	}

	pos.SetPan(pan)
	p.velocity = velocity

	return false
}

// InstantPager snaps to the target with no animation. Used when reduced
// motion is requested.
type InstantPager struct{}

func (InstantPager) Start(pos *PositionModel, _, toIndex int, width int) {
	pos.SetOffset(-float64(toIndex) * float64(width))
	pos.SetPan(0)
}

func (InstantPager) Step(*PositionModel) bool { return true }
