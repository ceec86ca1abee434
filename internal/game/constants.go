package game

// Trainer constants. Plan-view values match the canvas geometry the web client
// draws with, so positions returned in TargetShot can be used as-is.

const (
	EIScale        = 8.0 // EI at which the cut is a full edge hit (90°)
	MinLevel       = 1
	MaxLevel       = 10
	HalfStepLevel  = 5 // first level that snaps input to halves
	ScoreIncrement = 10

	// Selection weights. Nonzero EIs are doubled because they can be drawn in
	// either direction.
	ZeroEIWeight     = 1
	KnownEIWeight    = 4
	NewEIWeight      = 7
	DirectionWeights = 2

	// Plan view (y grows downward).
	TableWidth      = 400.0
	TableHeight     = 500.0
	GhostBallX      = TableWidth / 2
	GhostBallY      = TableHeight * 0.35
	CueBallY        = TableHeight * 0.85
	PocketRadius    = 22.0
	WallMargin      = PocketRadius + 13.0
	BallDiameter    = 30.0
	SafeMinDistance = 30.0 // pocket never overlaps the object ball
	NoWallSentinel  = 10000.0

	// Shooter view: a full-diameter offset of the object ball equals EI 8.
	ShooterDiameter = 260.0
)
