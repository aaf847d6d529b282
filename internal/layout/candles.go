package layout

import rl "github.com/gen2brain/raylib-go/raylib"

// glyphs place candles for each digit on a grid: x in [-1, 1] across, z in [-2, 1] from
// the far edge of the digit to the near one. Units are Candles.Spacing.
var glyphs = map[rune][][2]float32{
	'0': {{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {-1, -1}, {1, -1}, {-1, -2}, {0, -2}, {1, -2}},
	'1': {{-1, 0.5}, {0, 1}, {0, 0}, {0, -1}, {0, -2}},
	'2': {
		{-1, 1}, {0, 1}, {1, 1},
		{1, 0},
		{0, -0.5}, {-1, -1},
		{0, -2}, {1, -2}, {-1, -2},
	},
	'3': {
		{-1, 1}, {0, 1}, {1, 1},
		{0, -0.5}, {1, -0.5},
		{-1, -2}, {0, -2}, {1, -2},
		{1, 0}, {1, -1.2},
	},
	'4': {{-1, 1}, {-1, 0}, {-1, -0.5}, {0, -0.5}, {1, 1}, {1, 0}, {1, -0.5}, {1, -1}, {1, -2}},
	'5': {{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {0, -0.5}, {1, -1}, {-1, -2}, {0, -2}, {1, -2}},
	'6': {{0, 1}, {1, 1}, {-1, 0}, {-1, -1}, {-1, -2}, {0, -2}, {1, -2}, {1, -1}, {0, -0.5}},
	'7': {{-1, 1}, {0, 1}, {1, 1}, {1, 0}, {0.5, -0.5}, {0, -1}, {0, -2}},
	'8': {{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {0, -0.5}, {-1, -1}, {1, -1}, {-1, -2}, {0, -2}, {1, -2}},
	'9': {{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {0, -0.5}, {1, -0.5}, {1, -1}, {1, -2}, {0, -2}},
}

// CandlePositions returns candle bases, relative to the cake centre, spelling c.Digits on a cake
// of the given height. Digits are centred 2*DigitOffset apart; characters without a glyph
// leave a gap.
func CandlePositions(c Candles, cakeHeight float32) []rl.Vector3 {
	digits := []rune(c.Digits)
	y := cakeHeight/2 + 0.1
	var out []rl.Vector3
	for i, d := range digits {
		centre := (float32(i) - float32(len(digits)-1)/2) * 2 * c.DigitOffset
		for _, p := range glyphs[d] {
			out = append(out, rl.NewVector3(centre+p[0]*c.Spacing, y, p[1]*c.Spacing))
		}
	}
	return out
}
