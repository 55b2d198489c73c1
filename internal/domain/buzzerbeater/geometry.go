package buzzerbeater

import (
	"math"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
)

// Court image is 368px wide with baskets at x=21 and x=347 (326px apart).
// Real basket-to-basket distance is 83.5ft (94ft court minus 5.25ft at each end).
const (
	CourtWidthPx = 368
	LeftBasketX  = 21
	RightBasketX = 347
	BasketY      = 96
	FeetPerPixel = 83.5 / (RightBasketX - LeftBasketX)
)

// ShotDistance measures the release point against the basket the side attacks.
func ShotDistance(pos *playbyplay.Point, side int) (Distance, bool) {
	if pos == nil {
		return Distance{}, false
	}

	basketX := LeftBasketX
	if side == playbyplay.SideHome {
		basketX = RightBasketX
	}
	dx := float64(pos.X - basketX)
	dy := float64(pos.Y - BasketY)
	px := math.Sqrt(dx*dx + dy*dy)

	return Distance{Pixels: px, Feet: px * FeetPerPixel}, true
}
