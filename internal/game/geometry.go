package game

import "math"

// EIToAngle converts an Eclipse Index to a cut angle in degrees. Only the
// magnitude is used; direction is tracked separately.
func EIToAngle(ei float64) float64 {
	s := math.Abs(ei) / EIScale
	if s > 1 {
		s = 1
	}
	return math.Asin(s) * 180 / math.Pi
}

// AngleToEI is the inverse of EIToAngle over [0°, 90°].
func AngleToEI(angle float64) float64 {
	return math.Sin(angle*math.Pi/180) * EIScale
}

// QuantizeEI rounds an EI to the nearest half, absorbing float error carried
// by stored angles.
func QuantizeEI(ei float64) float64 {
	return math.Round(ei*2) / 2
}

// aimVector is the unit direction from the ghost ball toward the pocket.
// "Up the table" is negative y.
func aimVector(angle float64, dir Direction) Vec2 {
	rad := angle * math.Pi / 180
	sign := dir.Sign()
	if sign == 0 {
		sign = 1 // sin(0) is 0 either way
	}
	return NewVec2(math.Sin(rad*sign), -math.Cos(rad*sign))
}

// MaxPocketDistance casts a ray from the table origin along the shot line and
// returns the distance to the nearest inset wall the ray faces.
func (t Table) MaxPocketDistance(angle float64, dir Direction) float64 {
	d := aimVector(angle, dir)
	minT := NoWallSentinel

	if d.X > 0 {
		if v := (t.Width - t.WallMargin - t.OriginX) / d.X; v > 0 {
			minT = math.Min(minT, v)
		}
	}
	if d.X < 0 {
		if v := (t.WallMargin - t.OriginX) / d.X; v > 0 {
			minT = math.Min(minT, v)
		}
	}
	if d.Y < 0 {
		if v := (t.WallMargin - t.OriginY) / d.Y; v > 0 {
			minT = math.Min(minT, v)
		}
	}
	if d.Y > 0 {
		if v := (t.Height - t.WallMargin - t.OriginY) / d.Y; v > 0 {
			minT = math.Min(minT, v)
		}
	}

	return minT
}

// PocketDistance picks a distance in the outer half of the space between the
// object ball clearance and maxDist. u is a uniform draw in [0, 1).
func (t Table) PocketDistance(maxDist, u float64) float64 {
	if maxDist <= t.SafeMin {
		return maxDist
	}
	r := maxDist - t.SafeMin
	return t.SafeMin + r*0.5 + u*r*0.5
}

// Origin is the ghost ball center.
func (t Table) Origin() Vec2 {
	return NewVec2(t.OriginX, t.OriginY)
}

// ObjectBallPosition places the object ball one diameter past the ghost ball
// along the shot line.
func (t Table) ObjectBallPosition(angle float64, dir Direction) Vec2 {
	return t.Origin().Plus(aimVector(angle, dir).Times(t.BallDiameter))
}

func (t Table) PocketPosition(angle float64, dir Direction, dist float64) Vec2 {
	return t.Origin().Plus(aimVector(angle, dir).Times(dist))
}

func (t Table) CueBallPosition() Vec2 {
	return NewVec2(t.OriginX, t.CueBallY)
}

// ShooterOffset is the horizontal offset of the object ball behind the cue
// ball in the shooter's view for the given answer.
func ShooterOffset(ei float64, dir Direction) float64 {
	return ei / EIScale * ShooterDiameter * dir.Sign()
}

// EIFromShooterOffset converts a pointer offset in the shooter view back to a
// raw EI and direction. A zero offset reads as right, like the web client.
func EIFromShooterOffset(dx float64) (float64, Direction) {
	dir := DirectionRight
	if dx < 0 {
		dir = DirectionLeft
	}
	return math.Abs(dx) / ShooterDiameter * EIScale, dir
}
