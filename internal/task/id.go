package task

import (
	"math"
	"math/rand/v2"
)

// RandomIDLimit bounds ids drawn by Random.
const RandomIDLimit = 1000

// IDGenerator picks the id for a new task given the current sequence.
type IDGenerator interface {
	Next(existing []Task) int
}

// Sequential returns one more than the largest id in use, so ids never collide.
// Once the largest id is math.MaxInt it hands out the smallest free
// non-negative id instead.
type Sequential struct{}

func (Sequential) Next(existing []Task) int {
	if len(existing) == 0 {
		return 0
	}
	top := existing[0].ID
	for _, t := range existing[1:] {
		if t.ID > top {
			top = t.ID
		}
	}
	if top == math.MaxInt {
		return lowestFreeID(existing)
	}
	return top + 1
}

func lowestFreeID(existing []Task) int {
	used := make(map[int]struct{}, len(existing))
	for _, t := range existing {
		used[t.ID] = struct{}{}
	}
	id := 0
	for {
		if _, ok := used[id]; !ok {
			return id
		}
		id++
	}
}

// Random draws from [0, RandomIDLimit) without checking for collisions.
// Kept for compatibility with stores written by the browser version.
type Random struct {
	Rand *rand.Rand
}

func (r Random) Next([]Task) int {
	if r.Rand != nil {
		return r.Rand.IntN(RandomIDLimit)
	}
	return rand.IntN(RandomIDLimit)
}

// NewIDGenerator maps a config strategy name to a generator.
func NewIDGenerator(strategy string) IDGenerator {
	if strategy == "random" {
		return Random{}
	}
	return Sequential{}
}
