package sim

// Progress tracks the furthest point reached along the lane and the wall that
// keeps the player from walking back towards it.
// MinX only decreases during play; Rebase moves it forward on a recycle.
type Progress struct {
	MinX  float64
	WallX float64
}

// NewProgress returns the progress at the start of a session
func NewProgress(cfg Config) Progress {
	return Progress{MinX: 0, WallX: cfg.InitialWall}
}

// Advance records x as reached and drags the wall along when it is a new minimum
func (p *Progress) Advance(x, wallOffset float64) {
	if x < p.MinX {
		p.MinX = x
		p.WallX = p.MinX + wallOffset
	}
}

// Rebase redefines the progress after a recycle
func (p *Progress) Rebase(x, wallOffset float64) {
	p.MinX = x
	p.WallX = x + wallOffset
}

// ClampForward keeps x on the open side of the wall
func (p Progress) ClampForward(x float64) float64 {
	if x > p.WallX {
		return p.WallX
	}
	return x
}
