package flight

import "github.com/go-gl/mathgl/mgl32"

// Coin is a collectible. It is hidden and uncollectable while Cooldown > 0.
type Coin struct {
	Position mgl32.Vec3
	Cooldown int     // ticks remaining
	Phase    float32 // spin offset, degrees
}

// Visible reports whether the coin is drawn and collectable.
func (c Coin) Visible() bool { return c.Cooldown == 0 }

// Bomb is a static hazard; only the first ActiveBombs() of them are armed.
type Bomb struct {
	Position mgl32.Vec3
}

// coinCells splits each horizontal axis into three spawn bands, as
// fractions of the play half-extent. Initial coins get one cell each.
var coinCells = [3][2]float32{
	{-1.0, -0.4},
	{-0.3, 0.3},
	{0.4, 1.0},
}

func spawnCoins(r *Rand, t Tuning) []Coin {
	h := t.PlayHalfExtent
	coins := make([]Coin, 0, len(coinCells)*len(coinCells))
	for _, cx := range coinCells {
		for _, cz := range coinCells {
			coins = append(coins, Coin{
				Position: r.Vec3(cx[0]*h, cx[1]*h, t.CoinFloor, t.PlayCeiling, cz[0]*h, cz[1]*h),
				Phase:    r.RangeF(0, 360),
			})
		}
	}
	return coins
}

func spawnBombs(r *Rand, t Tuning) []Bomb {
	h := t.PlayHalfExtent
	bombs := make([]Bomb, max(t.BombCount, 0))
	for i := range bombs {
		bombs[i].Position = r.Vec3(-h, h, t.BombFloor, t.PlayCeiling, -h, h)
	}
	return bombs
}

// relocate moves a picked-up coin anywhere in the play volume.
func relocate(r *Rand, t Tuning) mgl32.Vec3 {
	h := t.PlayHalfExtent
	return r.Vec3(-h, h, 0, t.PlayCeiling, -h, h)
}
