// Package morph drives the timed interpolation of the main particle
// buffer between generated point-cloud shapes.
package morph

import (
	"fmt"

	"github.com/gonewx/morphfield/pkg/field"
	"github.com/gonewx/morphfield/pkg/pattern"
)

// State identifies the controller's position in its two-state machine.
type State int

const (
	// StateIdle means no morph is in flight; the main buffer holds the
	// current pattern's points verbatim.
	StateIdle State = iota
	// StateTransitioning means a from/to pair is captured and the
	// buffer is being rewritten with eased interpolation each tick.
	StateTransitioning
)

// Controller owns the morph state machine. It is the only writer of
// the main particle buffer: on a trigger it snapshots the live buffer
// as "from", generates and normalizes the next pattern as "to", then
// advances eased interpolation between them once per tick.
//
// Progress advances by a fixed per-tick step rather than elapsed time,
// so morph duration scales with the host loop's frame rate. That
// matches the original behavior and the tests assume it.
type Controller struct {
	store    *field.Store
	patterns []pattern.Pattern
	size     float32 // normalization target size
	step     float32 // per-tick progress increment

	state    State
	current  int // pattern currently shown (or being left)
	next     int // pattern being morphed toward while transitioning
	from     []float32
	to       []float32
	progress float32
}

// NewController validates the tuning values and returns a controller
// in the idle state at pattern index 0. The caller is expected to have
// filled the store with pattern 0 already.
func NewController(store *field.Store, patterns []pattern.Pattern, size, step float32) (*Controller, error) {
	if store == nil {
		return nil, fmt.Errorf("store must not be nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("pattern list must not be empty")
	}
	if size <= 0 {
		return nil, fmt.Errorf("field size must be positive, got %v", size)
	}
	if step <= 0 || step > 1 {
		return nil, fmt.Errorf("morph step must be in (0, 1], got %v", step)
	}
	return &Controller{
		store:    store,
		patterns: patterns,
		size:     size,
		step:     step,
	}, nil
}

// State returns the current machine state.
func (c *Controller) State() State { return c.state }

// Current returns the index of the pattern currently shown. During a
// transition this is still the pattern being left; it flips to the
// target on the completion tick.
func (c *Controller) Current() int { return c.current }

// CurrentName returns the display name of the current pattern.
func (c *Controller) CurrentName() string { return c.patterns[c.current].Name }

// Progress returns morph progress in [0, 1]. It holds at 1 after a
// completed transition until the next trigger resets it.
func (c *Controller) Progress() float32 { return c.progress }

// Trigger starts a morph to the next pattern in the cycle. Fire and
// forget: a trigger while a transition is in flight is a no-op and
// never corrupts the captured from/to pair.
func (c *Controller) Trigger() {
	if c.state == StateTransitioning {
		return
	}
	c.next = (c.current + 1) % len(c.patterns)
	c.from = c.store.SnapshotMain()
	target := pattern.Normalize(c.patterns[c.next].Generate(c.store.ParticleCount), c.size)
	c.to = field.Flatten(target)
	c.progress = 0
	c.state = StateTransitioning
}

// Tick advances the controller by one frame. While transitioning it
// steps progress, applies cubic ease-out, and rewrites the main buffer
// as from + (to-from)*eased; the tick progress first reaches 1 is the
// completion tick, where eased clamps to 1 so the buffer lands on the
// target exactly. The sparkle mirror runs every tick regardless of
// state.
func (c *Controller) Tick() {
	if c.state == StateTransitioning {
		c.progress += c.step
		if c.progress > 1 {
			c.progress = 1
		}

		if c.progress >= 1 {
			// Completion tick: eased clamps to 1, so write the target
			// verbatim rather than through the lerp arithmetic.
			c.store.SetMain(c.to)
			c.state = StateIdle
			c.current = c.next
			c.from = nil
			c.to = nil
		} else {
			inv := 1 - c.progress
			eased := 1 - inv*inv*inv
			c.store.Lerp(c.from, c.to, eased)
		}
	}
	c.store.MirrorSparks()
}
