package main

import (
	"math/rand/v2"

	"github.com/plus3/coinfall/game"
)

var botActions = []game.Action{game.MoveLeft, game.MoveRight, game.SoftDrop, game.Rotate}

// Bot presses a random key on a fraction of frames. It never pauses.
type Bot struct {
	rng         *rand.Rand
	pressChance float64
}

func NewBot(rng *rand.Rand, pressChance float64) *Bot {
	return &Bot{rng: rng, pressChance: pressChance}
}

// Next returns the action for this frame, if any.
func (b *Bot) Next() (game.Action, bool) {
	if b.rng.Float64() >= b.pressChance {
		return 0, false
	}
	return botActions[b.rng.IntN(len(botActions))], true
}
