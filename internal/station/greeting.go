package station

import "github.com/spacehole-rogue/deepminer/internal/game"

var taglines = []string{
	"Where the recycled air is almost breathable.",
	"Ore in, credits out. No questions asked.",
	"Now with 40% fewer hull breaches!",
	"Free docking. Everything else costs extra.",
	"We buy rocks. You'd be surprised how many.",
	"Our motto: it could be worse.",
}

// Greeting picks the banner shown when the ship docks.
func Greeting(rng game.Rand) string {
	return taglines[rng.IntN(len(taglines))]
}
