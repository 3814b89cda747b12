package arkanoid

// Cue identifies a sound the host should play.
type Cue int

const (
	CueWallOrBrick Cue = iota
	CuePaddle
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueWallOrBrick:
		return "wall"
	case CuePaddle:
		return "paddle"
	case CueGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Intents are the side effects an event asks the host to perform.
type Intents struct {
	Render bool
	Cues   []Cue // At most one of each, in declaration order
}

func cuesFor(col Collisions, finished bool) []Cue {
	var cues []Cue
	if col.WallHits > 0 || len(col.Bricks) > 0 {
		cues = append(cues, CueWallOrBrick)
	}
	if col.PaddleHits > 0 {
		cues = append(cues, CuePaddle)
	}
	if finished {
		cues = append(cues, CueGameOver)
	}
	return cues
}
