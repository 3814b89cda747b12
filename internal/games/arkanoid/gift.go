package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// EffectType is the reward a brick releases when destroyed.
type EffectType int

const (
	EffectNone      EffectType = iota // Brick carries no reward
	EffectWiden                       // Extended paddle
	EffectMultiball                   // Extra balls every tick
	EffectSlow                        // Slow vertical speed
	EffectFast                        // Fast vertical speed
	EffectSticky                      // Paddle catches balls
	EffectCancel                      // Clears every active effect
)

// rewardEffects lists the effects a brick may be assigned, in selection order.
// CANCEL is a legal reward.
var rewardEffects = []EffectType{
	EffectWiden,
	EffectMultiball,
	EffectSlow,
	EffectFast,
	EffectSticky,
	EffectCancel,
}

// String returns the name of the effect.
func (e EffectType) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectWiden:
		return "Widen"
	case EffectMultiball:
		return "Multiball"
	case EffectSlow:
		return "Slow"
	case EffectFast:
		return "Fast"
	case EffectSticky:
		return "Sticky"
	case EffectCancel:
		return "Cancel"
	default:
		return "?"
	}
}

// Glyph returns the display character for a falling gift.
func (e EffectType) Glyph() rune {
	switch e {
	case EffectWiden:
		return 'W'
	case EffectMultiball:
		return 'M'
	case EffectSlow:
		return 'S'
	case EffectFast:
		return 'F'
	case EffectSticky:
		return 'T'
	case EffectCancel:
		return 'C'
	default:
		return '?'
	}
}

// EffectSet is an unordered set of active effects.
type EffectSet uint8

// NewEffectSet returns a set holding the given effects.
func NewEffectSet(effects ...EffectType) EffectSet {
	var s EffectSet
	for _, e := range effects {
		s = s.With(e)
	}
	return s
}

// Has reports whether e is in the set.
func (s EffectSet) Has(e EffectType) bool {
	if e == EffectNone {
		return false
	}
	return s&(1<<uint(e)) != 0
}

// With returns the set with e added.
func (s EffectSet) With(e EffectType) EffectSet {
	if e == EffectNone {
		return s
	}
	return s | 1<<uint(e)
}

// Without returns the set with e removed.
func (s EffectSet) Without(e EffectType) EffectSet {
	return s &^ (1 << uint(e))
}

// List returns the effects in the set in declaration order.
func (s EffectSet) List() []EffectType {
	var out []EffectType
	for _, e := range rewardEffects {
		if s.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

// UpdateEffects applies one tick of captured gifts to the active set.
//
// CANCEL clears everything and overrides every other rule. A captured SLOW
// removes an active FAST instead of being added, and vice versa. STICKY is
// dropped once the paddle's sticky counter is exhausted unless it was caught
// again this tick. MULTIBALL stays until cancelled. Anything else captured is
// added.
func UpdateEffects(active EffectSet, captured []EffectType, stickyLeft int) EffectSet {
	caught := NewEffectSet(captured...)
	if caught.Has(EffectCancel) {
		return 0
	}

	next := active
	fresh := caught &^ active

	// Opposing speeds annihilate, whether one was active or both were caught.
	switch {
	case fresh.Has(EffectSlow) && next.Has(EffectFast):
		next = next.Without(EffectFast)
		fresh = fresh.Without(EffectSlow)
	case fresh.Has(EffectFast) && next.Has(EffectSlow):
		next = next.Without(EffectSlow)
		fresh = fresh.Without(EffectFast)
	case fresh.Has(EffectSlow) && fresh.Has(EffectFast):
		fresh = fresh.Without(EffectSlow).Without(EffectFast)
	}

	if next.Has(EffectSticky) && stickyLeft <= 0 && !caught.Has(EffectSticky) {
		next = next.Without(EffectSticky)
	}

	return next | fresh
}

// Gift is a falling power-up released by a destroyed brick.
type Gift struct {
	Pos    core.Position // Top-left corner in pixels
	Effect EffectType
}

// Rect returns the gift's bounding box.
func (g Gift) Rect(r Rules) core.Rect {
	return core.NewRect(g.Pos.X, g.Pos.Y, r.GiftSize, r.GiftSize)
}

// spawnGifts returns gifts plus one new gift per destroyed brick that
// carries a reward. The input slice is not modified.
func spawnGifts(gifts []Gift, destroyed []Brick, r Rules) []Gift {
	out := make([]Gift, 0, len(gifts)+len(destroyed))
	out = append(out, gifts...)
	for _, b := range destroyed {
		if b.Effect == EffectNone {
			continue
		}
		rect := b.Rect(r)
		out = append(out, Gift{Pos: core.Pos(rect.X, rect.Y), Effect: b.Effect})
	}
	return out
}

// advanceGifts moves every gift down one step, then removes the ones the
// paddle caught and the ones that fell past the floor. It returns the
// remaining gifts and the effects caught this tick.
func advanceGifts(gifts []Gift, p Paddle, area core.Area, r Rules) ([]Gift, []EffectType) {
	var captured []EffectType
	out := make([]Gift, 0, len(gifts))
	for _, g := range gifts {
		g.Pos = g.Pos.Add(core.Vel(0, r.GiftFallSpeed))
		switch {
		case p.Captures(g, r):
			captured = append(captured, g.Effect)
		case g.Pos.Y >= area.Height:
			// Lost
		default:
			out = append(out, g)
		}
	}
	return out, captured
}

// pickEffect chooses a brick's reward at creation time.
func pickEffect(rnd Rand, chance int) EffectType {
	if rnd.Intn(100) >= chance {
		return EffectNone
	}
	return rewardEffects[rnd.Intn(len(rewardEffects))]
}
