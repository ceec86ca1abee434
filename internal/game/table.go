package game

// Table holds the plan-view geometry used to place the pocket.
type Table struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	OriginX      float64 `json:"origin_x"`
	OriginY      float64 `json:"origin_y"`
	CueBallY     float64 `json:"cue_ball_y"`
	WallMargin   float64 `json:"wall_margin"`
	SafeMin      float64 `json:"safe_min"`
	BallDiameter float64 `json:"ball_diameter"`
}

// NewStandardTable returns the 400x500 plan view the web client renders.
func NewStandardTable() Table {
	return Table{
		Width:        TableWidth,
		Height:       TableHeight,
		OriginX:      GhostBallX,
		OriginY:      GhostBallY,
		CueBallY:     CueBallY,
		WallMargin:   WallMargin,
		SafeMin:      SafeMinDistance,
		BallDiameter: BallDiameter,
	}
}
