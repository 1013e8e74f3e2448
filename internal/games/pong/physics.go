package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// BounceParams holds the constants of the paddle bounce model.
type BounceParams struct {
	Speed         float64 // Scale of both velocity components
	MaxAngle      float64 // Degrees, reached at the paddle tips
	MinHorizontal float64 // Floor of the horizontal fraction
}

// Bounce computes the ball velocity after it hits a paddle.
//
// The offset of the ball from the paddle center, normalized to [-1, 1],
// maps linearly to a bounce angle in [-MaxAngle, MaxAngle]. A hit at the
// center returns the ball straight back at full speed, a hit near a tip
// sends it steeply up or down. The horizontal fraction never drops below
// MinHorizontal so rallies cannot stall vertically. The vertical speed is
// derived from the hit position alone; the incoming vy is discarded.
func Bounce(paddleCenterY, paddleHeight, ballCenterY, vx float64, p BounceParams) core.Vec2 {
	normalized := core.ClampF((paddleCenterY-ballCenterY)/(paddleHeight/2), -1, 1)
	angle := normalized * p.MaxAngle * math.Pi / 180

	horizontal := math.Abs(math.Cos(angle))
	if horizontal > 0 && horizontal < p.MinHorizontal {
		horizontal = p.MinHorizontal
	}

	// Reverse away from the paddle that was hit
	if vx > 0 {
		horizontal = -horizontal
	}

	return core.Vec2{
		X: horizontal * p.Speed,
		Y: -math.Sin(angle) * p.Speed,
	}
}
