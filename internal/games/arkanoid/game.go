package arkanoid

import (
	"fmt"
	"unicode"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseRunning  Phase = iota // Playing the current level
	PhaseFinished              // Won or lost, ignores further ticks
)

func (p Phase) String() string {
	if p == PhaseFinished {
		return "finished"
	}
	return "running"
}

// Flags are the user toggles plus the finished marker.
type Flags struct {
	Levels   bool // Advance to the next level when a field is cleared
	Finished bool
	Sound    bool
	Gifts    bool // Destroyed bricks release gifts
}

// Extras is the bookkeeping part of a Game.
type Extras struct {
	Effects   EffectSet
	Gifts     []Gift
	BallsLeft int // Reserve balls
	Level     int // Index into the level set
	Won       bool
	Flags     Flags
}

// Game is one immutable snapshot of a match. Every event handler returns a
// new Game and leaves the receiver untouched.
type Game struct {
	Area   core.Area
	Balls  BallSet
	Paddle Paddle
	Bricks Field
	Score  int
	Extras Extras

	rules  Rules
	fields []Field // Prebuilt field of every level, read-only
}

// NewGame starts a match on level 0 with one ball resting on the paddle.
//
// All level fields are built up front so that ticks never consume
// randomness. An invalid level set is an error.
func NewGame(area core.Area, rules Rules, levels LevelSet, rnd Rand) (Game, error) {
	if err := ValidateSet(levels); err != nil {
		return Game{}, err
	}
	fields := make([]Field, levels.Len())
	for i := range fields {
		l := levels.Layout(i)
		if l.Width()*rules.BrickWidth > area.Width || l.Height()*rules.BrickHeight > area.Height {
			return Game{}, fmt.Errorf("level %d: %w", i+1, ErrLayoutTooLarge)
		}
		f, err := BuildField(l, rules, rnd)
		if err != nil {
			return Game{}, fmt.Errorf("level %d: %w", i+1, err)
		}
		fields[i] = f
	}

	paddle := NewPaddle(area, rules)
	return Game{
		Area:   area,
		Balls:  BallSet{restingBall(paddle, rules)},
		Paddle: paddle,
		Bricks: fields[0],
		Extras: Extras{
			BallsLeft: rules.ReserveBalls,
			Flags:     rules.Flags,
		},
		rules:  rules,
		fields: fields,
	}, nil
}

// restingBall returns a motionless ball sitting on top of the paddle.
func restingBall(p Paddle, r Rules) Ball {
	return Ball{
		Pos:    core.Pos(p.Pos.X, p.Top(r)-r.BallRadius),
		Radius: r.BallRadius,
	}
}

// Rules returns the constants the game was created with.
func (g Game) Rules() Rules {
	return g.rules
}

// Levels returns how many levels the game holds.
func (g Game) Levels() int {
	return len(g.fields)
}

// Phase returns the state machine's current state.
func (g Game) Phase() Phase {
	if g.Extras.Flags.Finished {
		return PhaseFinished
	}
	return PhaseRunning
}

// Handle dispatches one host event.
func (g Game) Handle(ev core.Event) (Game, Intents) {
	switch ev.Kind {
	case core.EventTick:
		return g.Tick()
	case core.EventPointerMove:
		return g.MovePointer(ev.X)
	case core.EventPointerPress:
		return g.Press()
	case core.EventKeyPress:
		return g.KeyPress(ev.Key)
	default:
		return g, Intents{}
	}
}

// Tick advances the simulation one step.
func (g Game) Tick() (Game, Intents) {
	if g.Extras.Flags.Finished {
		return g, Intents{}
	}

	balls, col := g.Balls.Advance(g.Area, g.rules, g.Paddle, g.Bricks, g.Extras.Effects)

	if len(balls) == 0 && g.Extras.BallsLeft <= 0 {
		return g.finish(balls, false, col)
	}

	if g.Bricks.Cleared() {
		if !g.Extras.Flags.Levels || g.Extras.Level >= len(g.fields)-1 {
			return g.finish(balls, true, col)
		}
		next := g
		next.Balls = BallSet{}
		next.Bricks = g.fields[g.Extras.Level+1]
		next.Extras.Level++
		return next, g.intents(col, false)
	}

	bricks, destroyed := g.Bricks.Apply(col.Bricks)

	gifts := g.Extras.Gifts
	if g.Extras.Flags.Gifts {
		gifts = spawnGifts(gifts, destroyed, g.rules)
	}
	gifts, captured := advanceGifts(gifts, g.Paddle, g.Area, g.rules)

	effects := UpdateEffects(g.Extras.Effects, captured, g.Paddle.StickyLeft)
	stickyCaught := NewEffectSet(captured...).Has(EffectSticky) && effects.Has(EffectSticky)
	paddle := g.Paddle.Update(stickyCaught, effects, col.PaddleHits, g.Area, g.rules)

	next := g
	next.Balls = balls
	next.Bricks = bricks
	next.Paddle = paddle
	next.Score = g.Score + scoreOf(destroyed)
	next.Extras.Effects = effects
	next.Extras.Gifts = gifts
	return next, g.intents(col, false)
}

// finish ends the match. Remaining reserve balls are added to the score.
func (g Game) finish(balls BallSet, won bool, col Collisions) (Game, Intents) {
	next := g
	next.Balls = balls
	next.Score = g.Score + g.Extras.BallsLeft
	next.Extras.Won = won
	next.Extras.Flags.Finished = true
	return next, next.intents(col, true)
}

func (g Game) intents(col Collisions, finished bool) Intents {
	in := Intents{Render: true}
	if g.Extras.Flags.Sound {
		in.Cues = cuesFor(col, finished)
	}
	return in
}

// MovePointer moves the paddle to x. Resting balls follow the paddle.
func (g Game) MovePointer(x int) (Game, Intents) {
	if g.Extras.Flags.Finished {
		return g, Intents{}
	}
	paddle := g.Paddle.MoveTo(x, g.Area)
	dx := paddle.Pos.X - g.Paddle.Pos.X
	if dx == 0 {
		return g, Intents{}
	}
	next := g
	next.Paddle = paddle
	next.Balls = g.Balls.shift(dx, g.Area)
	return next, Intents{Render: true}
}

// Press launches resting balls. With no ball in play it places a reserve
// ball on the paddle instead; with no reserve left it does nothing.
func (g Game) Press() (Game, Intents) {
	if g.Extras.Flags.Finished {
		return g, Intents{}
	}
	next := g
	switch {
	case len(g.Balls) > 0:
		if !g.Balls.Resting() {
			return g, Intents{}
		}
		next.Balls = g.Balls.launch(g.rules)
	case g.Extras.BallsLeft > 0:
		next.Balls = BallSet{restingBall(g.Paddle, g.rules)}
		next.Extras.BallsLeft--
	default:
		return g, Intents{}
	}
	return next, Intents{Render: true}
}

// KeyPress toggles a flag: 's' sound, 'l' level progression, 'g' gifts.
// Other keys are ignored.
func (g Game) KeyPress(key rune) (Game, Intents) {
	next := g
	switch unicode.ToLower(key) {
	case 's':
		next.Extras.Flags.Sound = !g.Extras.Flags.Sound
	case 'l':
		next.Extras.Flags.Levels = !g.Extras.Flags.Levels
	case 'g':
		next.Extras.Flags.Gifts = !g.Extras.Flags.Gifts
	default:
		return g, Intents{}
	}
	return next, Intents{Render: true}
}
