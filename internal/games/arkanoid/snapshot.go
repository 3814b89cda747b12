package arkanoid

// Snapshot is a flattened copy of a Game using primitive types only.
type Snapshot struct {
	Score      int
	Level      int
	BallsLeft  int
	Effects    uint8
	Finished   bool
	Won        bool
	PaddleX    int
	PaddleW    int
	StickyLeft int

	// Each ball is 5 ints: X, Y, VX, VY, Radius
	BallData []int

	// Each brick is 5 ints: Col, Row, Hits, Type, Effect
	BrickData []int

	// Each gift is 3 ints: X, Y, Effect
	GiftData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g Game) Snapshot() Snapshot {
	ballData := make([]int, 0, len(g.Balls)*5)
	for _, b := range g.Balls {
		ballData = append(ballData, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Radius)
	}

	brickData := make([]int, 0, g.Bricks.Len()*5)
	for _, b := range g.Bricks.bricks {
		brickData = append(brickData, b.Cell.X, b.Cell.Y, b.Hits, int(b.Type), int(b.Effect))
	}

	giftData := make([]int, 0, len(g.Extras.Gifts)*3)
	for _, gift := range g.Extras.Gifts {
		giftData = append(giftData, gift.Pos.X, gift.Pos.Y, int(gift.Effect))
	}

	return Snapshot{
		Score:      g.Score,
		Level:      g.Extras.Level,
		BallsLeft:  g.Extras.BallsLeft,
		Effects:    uint8(g.Extras.Effects),
		Finished:   g.Extras.Flags.Finished,
		Won:        g.Extras.Won,
		PaddleX:    g.Paddle.Pos.X,
		PaddleW:    g.Paddle.Width,
		StickyLeft: g.Paddle.StickyLeft,
		BallData:   ballData,
		BrickData:  brickData,
		GiftData:   giftData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Score)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallsLeft)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Effects)        //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Finished)      //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Won)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleW)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StickyLeft)     //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.BallData))  //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.BrickData)) //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.GiftData))  //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.GiftData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
